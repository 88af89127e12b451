package core

import "testing"

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Box
		hit    bool
		side   Side
		amount float32
	}{
		{
			name: "no overlap on any axis",
			a:    BoxAround(V(0, 0), 5, 5),
			b:    BoxAround(V(100, 100), 5, 5),
			hit:  false,
		},
		{
			name: "separated horizontally only",
			a:    BoxAround(V(0, 0), 5, 5),
			b:    BoxAround(V(20, 0), 5, 5),
			hit:  false,
		},
		{
			name: "touching edges is not an overlap",
			a:    BoxAround(V(0, 0), 5, 5),
			b:    BoxAround(V(10, 0), 5, 5),
			hit:  false,
		},
		{
			name:   "subject right edge one unit past other left edge",
			a:      BoxAround(V(10, 0), 5, 5),
			b:      BoxAround(V(19, 0), 5, 5),
			hit:    true,
			side:   SideRight,
			amount: 1,
		},
		{
			name:   "subject left edge one unit past other right edge",
			a:      BoxAround(V(19, 0), 5, 5),
			b:      BoxAround(V(10, 0), 5, 5),
			hit:    true,
			side:   SideLeft,
			amount: 1,
		},
		{
			name:   "subject top pokes into box above",
			a:      BoxAround(V(0, 0), 5, 5),
			b:      BoxAround(V(0, 8), 20, 5),
			hit:    true,
			side:   SideTop,
			amount: 2,
		},
		{
			name:   "subject bottom pokes into box below",
			a:      BoxAround(V(0, 0), 5, 5),
			b:      BoxAround(V(0, -8), 20, 5),
			hit:    true,
			side:   SideBottom,
			amount: 2,
		},
		{
			name:   "identical boxes tie-break to left",
			a:      BoxAround(V(3, 3), 5, 5),
			b:      BoxAround(V(3, 3), 5, 5),
			hit:    true,
			side:   SideLeft,
			amount: 10,
		},
		{
			name:   "horizontal tie between right and top goes to right",
			a:      BoxAround(V(0, 0), 5, 5),
			b:      BoxAround(V(8, 8), 5, 5),
			hit:    true,
			side:   SideRight,
			amount: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Intersect(tc.a, tc.b)
			if ok != tc.hit {
				t.Fatalf("Intersect() hit = %v, expected %v", ok, tc.hit)
			}
			if !ok {
				return
			}
			if got.Side != tc.side {
				t.Errorf("Intersect() side = %v, expected %v", got.Side, tc.side)
			}
			if got.Amount != tc.amount {
				t.Errorf("Intersect() amount = %v, expected %v", got.Amount, tc.amount)
			}
		})
	}
}

func TestIntersectIsRepeatable(t *testing.T) {
	a := BoxAround(V(10, 10), 5, 5)
	b := BoxAround(V(17, 12), 4, 4)

	first, ok1 := Intersect(a, b)
	second, ok2 := Intersect(a, b)
	if ok1 != ok2 || first != second {
		t.Errorf("Intersect should be idempotent: %v/%v vs %v/%v", first, ok1, second, ok2)
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(V(480, 270), 5, 5)

	expected := Box{Left: 475, Right: 485, Top: 275, Bottom: 265}
	if b != expected {
		t.Errorf("BoxAround() = %+v, expected %+v", b, expected)
	}
	if c := b.Center(); c != V(480, 270) {
		t.Errorf("Center() = %+v, expected (480, 270)", c)
	}
}

func TestSideString(t *testing.T) {
	names := map[Side]string{
		SideLeft:   "Left",
		SideRight:  "Right",
		SideTop:    "Top",
		SideBottom: "Bottom",
		Side(42):   "Unknown",
	}
	for side, want := range names {
		if side.String() != want {
			t.Errorf("Side(%d).String() = %q, expected %q", int(side), side.String(), want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestOverlaps(t *testing.T) {
	a := BoxAround(V(0, 0), 5, 5)
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"overlapping", BoxAround(V(8, 0), 5, 5), true},
		{"touching edges", BoxAround(V(10, 0), 5, 5), false},
		{"apart", BoxAround(V(30, 30), 5, 5), false},
		{"contained", BoxAround(V(1, 1), 1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(a, tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}
