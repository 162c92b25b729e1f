package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/router"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/session"
	"github.com/abhisek/mathquiz/internal/ui/layout"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// SummaryScreen displays the final score of a quiz.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "New quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// ScoreLine is the headline shown on the summary.
func (s *SummaryScreen) ScoreLine() string {
	return fmt.Sprintf("Your final score is %s%%.", formatScore(s.summary.Score))
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	center(theme.Selected.Render("Quiz complete!"))
	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(scoreColor(sum.Score)).Bold(true).Render(s.ScoreLine()))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	center(theme.Hint.Render(fmt.Sprintf("%d of %d correct in %d:%02d",
		sum.TotalCorrect, sum.TotalQuestions, mins, secs)))
	b.WriteString("\n")

	if len(sum.KindResults) > 0 {
		center(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(min(width-8, 40), 0))))
		for _, kr := range sum.KindResults {
			center(theme.Body.Render(fmt.Sprintf("%-16s %d/%d", kr.Kind, kr.Correct, kr.Attempted)))
		}
	}

	return b.String()
}

// formatScore drops the decimals of whole percentages.
func formatScore(score float64) string {
	if score == float64(int(score)) {
		return fmt.Sprintf("%d", int(score))
	}
	return fmt.Sprintf("%.1f", score)
}

func scoreColor(score float64) color.Color {
	switch {
	case score >= 80:
		return theme.Success
	case score >= 50:
		return theme.Accent
	default:
		return theme.Error
	}
}
