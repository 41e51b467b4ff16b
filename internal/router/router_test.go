package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pwmeter/internal/screen"
	"github.com/abhisek/pwmeter/internal/ui/layout"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

type hintedScreen struct{ stubScreen }

func (h *hintedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Tab", Description: "Charts"}}
}

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestNavigationMessages(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "second"}})
	if r.View(80, 24) != "second" {
		t.Errorf("expected 'second' view, got %q", r.View(80, 24))
	}

	r.Update(PopScreenMsg{})
	if r.Active() != s1 {
		t.Error("expected first screen active after pop")
	}
	if s1.updates != 0 {
		t.Error("navigation messages should not reach screens")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if s2.updates != 1 || s1.updates != 0 {
		t.Errorf("updates: first=%d second=%d, want 0/1", s1.updates, s2.updates)
	}
}

func TestKeyHints(t *testing.T) {
	fallback := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}

	r := New(&stubScreen{title: "plain"})
	if got := r.KeyHints(fallback); len(got) != 1 || got[0].Key != "Ctrl+C" {
		t.Errorf("expected fallback hints, got %v", got)
	}

	r.Push(&hintedScreen{stubScreen{title: "hinted"}})
	if got := r.KeyHints(fallback); len(got) != 1 || got[0].Key != "Tab" {
		t.Errorf("expected screen hints, got %v", got)
	}
}
