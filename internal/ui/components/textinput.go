package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/quizgen"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typing numeric answers. Only
// digits, a leading minus sign and one decimal point are accepted.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages, dropping keys that cannot be part of a number.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if key == "space" || (len(key) == 1 && !a.accepts(key[0])) {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// accepts reports whether c may be typed given the current value.
func (a AnswerInput) accepts(c byte) bool {
	v := a.Model.Value()
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '-':
		return v == ""
	case c == '.':
		return !strings.Contains(v, ".")
	}
	return false
}

// View renders the input with a mark once the answer has been graded.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Answer parses the input value.
func (a AnswerInput) Answer() (float64, error) {
	return quizgen.ParseAnswer(a.Model.Value())
}

// Grade marks the input with the result of the answer.
func (a *AnswerInput) Grade(correct bool) {
	a.submitted = true
	a.correct = correct
}
