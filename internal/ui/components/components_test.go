package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func typeString(a AnswerInput, s string) AnswerInput {
	for _, r := range s {
		a, _ = a.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return a
}

func TestAnswerInput_AcceptsNumbers(t *testing.T) {
	a := typeString(NewAnswerInput("answer", 12), "-12.5")
	if a.Value() != "-12.5" {
		t.Fatalf("Value = %q, want %q", a.Value(), "-12.5")
	}
	got, err := a.Answer()
	if err != nil || got != -12.5 {
		t.Errorf("Answer = %v, %v; want -12.5", got, err)
	}
}

func TestAnswerInput_RejectsOtherKeys(t *testing.T) {
	a := typeString(NewAnswerInput("answer", 12), "1a2-3..4")
	if a.Value() != "123.4" {
		t.Errorf("Value = %q, want %q", a.Value(), "123.4")
	}
}

func TestAnswerInput_Grade(t *testing.T) {
	a := NewAnswerInput("answer", 12)
	a.Grade(true)
	if !strings.Contains(a.View(), "✓") {
		t.Error("expected check mark after correct grade")
	}
}

func TestProgressBar_Percent(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 5, 0},
		{5, 5, 1},
		{2, 4, 0.5},
		{7, 5, 1},
		{1, 0, 0},
	}
	for _, tc := range tests {
		if got := NewProgressBar(tc.done, tc.total, 40).Percent(); got != tc.want {
			t.Errorf("Percent(%d/%d) = %v, want %v", tc.done, tc.total, got, tc.want)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	if v := NewProgressBar(2, 5, 40).View(); !strings.Contains(v, "2/5") {
		t.Errorf("View missing counter: %q", v)
	}
}
