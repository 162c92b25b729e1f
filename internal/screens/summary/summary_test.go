package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquiz/internal/quizgen"
	"github.com/abhisek/mathquiz/internal/session"
)

func testSummary() *session.SessionSummary {
	return &session.SessionSummary{
		Duration:       90 * time.Second,
		TotalQuestions: 4,
		TotalCorrect:   3,
		Score:          75,
		KindResults: []session.KindResult{
			{Kind: quizgen.KindAddition, Attempted: 3, Correct: 3},
			{Kind: quizgen.KindDivision, Attempted: 1, Correct: 0},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_ScoreLine(t *testing.T) {
	s := New(testSummary())
	if got := s.ScoreLine(); got != "Your final score is 75%." {
		t.Errorf("ScoreLine = %q", got)
	}

	sum := testSummary()
	sum.Score = 100.0 / 3
	if got := New(sum).ScoreLine(); got != "Your final score is 33.3%." {
		t.Errorf("ScoreLine = %q", got)
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary()).View(80, 24)
	for _, want := range []string{"75%", "3 of 4 correct in 1:30", "addition"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_IgnoresOtherKeys(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command for other keys")
	}
}
