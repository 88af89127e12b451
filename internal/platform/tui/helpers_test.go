package tui

import (
	"errors"
	"strings"
)

var errStub = errors.New("stub failure")

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
