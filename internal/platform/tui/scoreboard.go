package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-arena/internal/registry"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

// maxRuns caps how many runs per mode the scoreboard loads.
const maxRuns = 100

// sortOrder selects how the loaded runs are listed.
type sortOrder int

const (
	byKills sortOrder = iota
	byFrames
	byRecent
	sortOrders
)

func (o sortOrder) String() string {
	switch o {
	case byFrames:
		return "frames"
	case byRecent:
		return "recent"
	default:
		return "kills"
	}
}

// rankedRun is a loaded run with its position in the kills ranking, which
// stays attached when the list is re-sorted.
type rankedRun struct {
	rank int
	storage.ScoreEntry
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Sort     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Sort, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Sort, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("←", "prev mode"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists recorded runs for one mode at a time, with the
// mode's totals and the seed of the highlighted run.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	mode   int
	store  *storage.Store
	stats  map[string]*storage.GameStats
	runs   []rankedRun
	order  sortOrder
	detail *storage.Run // Highlighted run, nil when there is none

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()

	if store != nil {
		if stats, err := store.GetAllGamesStats(); err == nil {
			m.stats = stats
		}
	}
	m.loadRuns()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Kills", Width: 7},
		{Title: "Frames", Width: 9},
		{Title: "Run", Width: 9},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, mode, stats, detail and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// gameID returns the mode currently shown, or "" with no modes registered.
func (m ScoreboardModel) gameID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// loadRuns fetches the best runs of the current mode and lists them in the
// current order.
func (m *ScoreboardModel) loadRuns() {
	m.runs = nil
	if m.store != nil && m.gameID() != "" {
		if scores, err := m.store.TopScores(m.gameID(), maxRuns); err == nil {
			m.runs = make([]rankedRun, len(scores))
			for i, s := range scores {
				m.runs[i] = rankedRun{rank: i + 1, ScoreEntry: s}
			}
		}
	}
	m.sortRuns()
}

// sortRuns orders the runs and rebuilds the table from the top.
func (m *ScoreboardModel) sortRuns() {
	slices.SortStableFunc(m.runs, func(a, b rankedRun) int {
		switch m.order {
		case byFrames:
			return cmp.Or(cmp.Compare(b.Frames, a.Frames), cmp.Compare(a.rank, b.rank))
		case byRecent:
			return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
		default:
			return cmp.Compare(a.rank, b.rank)
		}
	})

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = scoreRow(r.rank, r.ScoreEntry)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.loadDetail()
}

// loadDetail fetches the full record of the highlighted run.
func (m *ScoreboardModel) loadDetail() {
	m.detail = nil
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.runs) {
		return
	}
	if run, err := m.store.RunByID(m.runs[i].RunID); err == nil {
		m.detail = run
	}
}

// scoreRow formats one ranked entry as a table row.
func scoreRow(rank int, s storage.ScoreEntry) table.Row {
	return table.Row{
		fmt.Sprintf("#%d", rank),
		fmt.Sprintf("%d", s.Score),
		fmt.Sprintf("%d", s.Frames),
		shortRunID(s.RunID),
		s.CreatedAt.Format("Jan 02 15:04"),
	}
}

// shortRunID returns the first block of a run id, enough to tell runs apart.
func shortRunID(id uuid.UUID) string {
	if id == uuid.Nil {
		return "-"
	}
	return id.String()[:8]
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil

		case key.Matches(msg, m.keys.Sort):
			m.order = (m.order + 1) % sortOrders
			m.sortRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.loadDetail()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.newTable()
		m.sortRuns()
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m *ScoreboardModel) switchMode(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + step + len(m.modes)) % len(m.modes)
	m.loadRuns()
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	scoreEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.modes[m.mode].Title)
	}
	b.WriteString("\n")
	b.WriteString(centerText(scoreTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("< mode %d/%d >   sorted by %s", m.mode+1, len(m.modes), m.order), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(centerText(scoreFrameStyle.Render(scoreEmptyStyle.Render("No runs recorded yet.\nDestroy an enemy to set a high score!")), m.width))
	} else {
		b.WriteString(centerText(scoreFrameStyle.Render(m.table.View()), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(m.detailLine(), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statsLine summarizes every recorded run of the current mode.
func (m ScoreboardModel) statsLine() string {
	st, ok := m.stats[m.gameID()]
	if !ok || st.GamesCount == 0 {
		return "No runs played"
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Average: %.1f  Frames played: %d",
		st.GamesCount, st.HighScore, st.AvgScore, st.TotalFrames)
}

// detailLine describes the highlighted run, including the seed to replay it.
func (m ScoreboardModel) detailLine() string {
	if m.detail == nil {
		return ""
	}
	d := m.detail
	return fmt.Sprintf("Run %s  seed %d  %d kills in %d frames", d.RunID, d.Seed, d.Score, d.Frames)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
