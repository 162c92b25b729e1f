package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/quizgen"
	"github.com/abhisek/mathquiz/internal/router"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/screens/summary"
	"github.com/abhisek/mathquiz/internal/session"
	"github.com/abhisek/mathquiz/internal/ui/components"
	"github.com/abhisek/mathquiz/internal/ui/layout"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

const invalidInputMsg = "That wasn't a number!"

// QuizScreen asks the batch one question at a time.
type QuizScreen struct {
	state  *session.SessionState
	input  components.AnswerInput
	last   *session.Result
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over questions.
func New(questions []quizgen.Question) *QuizScreen {
	return &QuizScreen{
		state: session.New(questions),
		input: newInput(),
	}
}

func newInput() components.AnswerInput {
	return components.NewAnswerInput("Type your answer...", 12)
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.state.Done() {
		return s.finish()
	}
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	n := min(s.state.Index()+1, len(s.state.Questions))
	return fmt.Sprintf("Q %d/%d  ✓ %d", n, len(s.state.Questions), s.state.Correct())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingFeedback() {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

// State exposes the session for tests and callers.
func (s *QuizScreen) State() *session.SessionState {
	return s.state
}

func (s *QuizScreen) showingFeedback() bool {
	return s.last != nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	// Feedback overlay: any key moves on.
	if s.showingFeedback() {
		s.last = nil
		if s.state.Done() {
			return s, s.finish()
		}
		s.input = newInput()
		return s, s.input.Init()
	}

	if kmsg.String() == "enter" {
		return s.submitAnswer()
	}

	s.errMsg = ""
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer grades the typed answer.
func (s *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer, err := s.input.Answer()
	if err != nil {
		s.errMsg = invalidInputMsg
		return s, nil
	}

	result, err := s.state.Submit(answer)
	if err != nil {
		return s, s.finish()
	}
	s.errMsg = ""
	s.input.Grade(result.Correct)
	s.last = &result
	return s, nil
}

// finish swaps the quiz for its summary.
func (s *QuizScreen) finish() tea.Cmd {
	sum := session.BuildSummary(s.state)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder

	bar := components.NewProgressBar(s.state.Index(), len(s.state.Questions), min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	q, ok := s.state.Current()
	if s.last != nil {
		q, ok = s.last.Question, true
	}
	if !ok {
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d", s.questionNumber())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text + " = ?"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	switch {
	case s.last != nil:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, feedbackText(*s.last)))
	case s.errMsg != "":
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Incorrect.Render(s.errMsg)))
	}

	return b.String()
}

// questionNumber is the 1-based number of the question on screen.
func (s *QuizScreen) questionNumber() int {
	if s.last != nil {
		return s.state.Index()
	}
	return s.state.Index() + 1
}

func feedbackText(r session.Result) string {
	if r.Correct {
		return theme.Correct.Render("Correct!")
	}
	return theme.Incorrect.Render(fmt.Sprintf(
		"Sorry, that's incorrect. The correct answer is %s.",
		quizgen.FormatAnswer(r.CorrectAnswer)))
}
