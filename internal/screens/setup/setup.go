package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/quizgen"
	"github.com/abhisek/mathquiz/internal/router"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/screens/quiz"
	"github.com/abhisek/mathquiz/internal/ui/layout"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// MaxQuestions is the largest batch the form offers.
const MaxQuestions = 25

// Form rows, top to bottom.
const (
	fieldDifficulty = iota
	fieldQuestions
	fieldMultDiv
	fieldSqrtExp
	fieldStart
	fieldCount
)

// SetupScreen lets the player pick difficulty, batch size and operations
// before a quiz starts.
type SetupScreen struct {
	generator    *quizgen.Generator
	difficulty   int
	numQuestions int
	multDiv      bool
	sqrtExp      bool
	cursor       int
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen with the given defaults. Out-of-range defaults
// are clamped.
func New(generator *quizgen.Generator, difficulty, numQuestions int) *SetupScreen {
	return &SetupScreen{
		generator:    generator,
		difficulty:   quizgen.ClampDifficulty(difficulty),
		numQuestions: min(max(numQuestions, 1), MaxQuestions),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Categories returns the categories currently selected.
func (s *SetupScreen) Categories() quizgen.Categories {
	return quizgen.Categories{
		Additive:       true,
		Multiplicative: s.multDiv,
		Power:          s.sqrtExp,
		Root:           s.sqrtExp,
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.cursor = (s.cursor + fieldCount - 1) % fieldCount
	case "down", "j", "tab":
		s.cursor = (s.cursor + 1) % fieldCount
	case "left", "h":
		s.adjust(-1)
	case "right", "l":
		s.adjust(1)
	case "space":
		s.toggle()
	case "enter":
		if s.cursor == fieldMultDiv || s.cursor == fieldSqrtExp {
			s.toggle()
			return s, nil
		}
		return s, s.start()
	}
	return s, nil
}

func (s *SetupScreen) adjust(delta int) {
	switch s.cursor {
	case fieldDifficulty:
		s.difficulty = quizgen.ClampDifficulty(s.difficulty + delta)
	case fieldQuestions:
		s.numQuestions = min(max(s.numQuestions+delta, 1), MaxQuestions)
	case fieldMultDiv, fieldSqrtExp:
		s.toggle()
	}
}

func (s *SetupScreen) toggle() {
	switch s.cursor {
	case fieldMultDiv:
		s.multDiv = !s.multDiv
	case fieldSqrtExp:
		s.sqrtExp = !s.sqrtExp
	}
}

// start generates the batch and opens the quiz.
func (s *SetupScreen) start() tea.Cmd {
	questions := s.generator.GenerateQuiz(s.difficulty, s.numQuestions, s.Categories())
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quiz.New(questions)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Math Quiz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Choose your challenge"))
	b.WriteString("\n\n")

	rows := []string{
		s.row(fieldDifficulty, "Difficulty", fmt.Sprintf("◂ %2d ▸", s.difficulty)),
		s.row(fieldQuestions, "Questions", fmt.Sprintf("◂ %2d ▸", s.numQuestions)),
		s.row(fieldMultDiv, "Multiplication & division", checkbox(s.multDiv)),
		s.row(fieldSqrtExp, "Roots & exponents", checkbox(s.sqrtExp)),
	}
	for _, r := range rows {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	button := theme.ButtonInactive.Render("Start")
	if s.cursor == fieldStart {
		button = theme.ButtonActive.Render("Start")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, button))
	b.WriteString("\n\n")

	if hint := autoHint(s.difficulty); hint != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(hint))
	}

	return b.String()
}

func (s *SetupScreen) row(field int, label, value string) string {
	style := theme.Unselected
	marker := "  "
	if s.cursor == field {
		style = theme.Selected
		marker = "▸ "
	}
	return style.Render(fmt.Sprintf("%s%-28s %s", marker, label, value))
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// autoHint explains which operations the difficulty switches on by itself.
func autoHint(d int) string {
	switch {
	case d >= quizgen.PowerRootThreshold:
		return "All operations are included at this difficulty"
	case d >= quizgen.MultiplicativeThreshold:
		return "Multiplication & division are included at this difficulty"
	}
	return ""
}
