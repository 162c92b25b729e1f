package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "setup"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "setup"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "setup" {
		t.Errorf("expected active 'setup', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "setup"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "setup"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "setup"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "setup"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)

	s3 := &stubScreen{title: "summary"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("expected active 'summary', got %q", r.Active().Title())
	}
}

// countingScreen records how many messages it received.
type countingScreen struct {
	stubScreen
	updates int
}

func (s *countingScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func TestUpdateForwardsToActive(t *testing.T) {
	setup := &countingScreen{stubScreen: stubScreen{title: "setup"}}
	quiz := &countingScreen{stubScreen: stubScreen{title: "quiz"}}
	r := New(setup)
	r.Update(PushScreenMsg{Screen: quiz})

	r.Update(tea.KeyPressMsg{Code: '1', Text: "1"})

	if quiz.updates != 1 || setup.updates != 0 {
		t.Errorf("updates: quiz=%d setup=%d, want 1 and 0", quiz.updates, setup.updates)
	}

	r.Update(PopScreenMsg{})
	if r.View(80, 24) != "setup" {
		t.Errorf("expected setup view after pop, got %q", r.View(80, 24))
	}
}
