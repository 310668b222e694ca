// Package summary is the post-quiz results screen.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/jbarrault/lexiq/internal/quiz"
	"github.com/jbarrault/lexiq/internal/router"
	"github.com/jbarrault/lexiq/internal/screen"
	"github.com/jbarrault/lexiq/internal/ui/layout"
	"github.com/jbarrault/lexiq/internal/ui/theme"
)

// maxReviewRows caps the per-answer review list; long sessions scroll
// the tail off rather than overflow the frame.
const maxReviewRows = 10

// SummaryScreen displays the finished session's results.
type SummaryScreen struct {
	session *engine.Session
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a results screen over a finished session.
func New(session *engine.Session) *SummaryScreen {
	return &SummaryScreen{session: session}
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
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Back to setup, which sits below on the stack.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.session.Summary()
	if sum == nil {
		return ""
	}

	var b strings.Builder

	title := "Quiz complete!"
	if sum.Mode == engine.ModeSurvival && sum.CorrectCount < len(s.session.Answers()) {
		title = "Survival over!"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	// Score.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("★ %d points", sum.Score)))
	b.WriteString("\n\n")

	// Stats line.
	mins := int(sum.TotalTime.Minutes())
	secs := int(sum.TotalTime.Seconds()) % 60
	statsLine := fmt.Sprintf("Correct: %d/%d        Accuracy: %.0f%%        Time: %d:%02d",
		sum.CorrectCount, sum.QuestionCount, sum.Accuracy*100, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	extraLine := fmt.Sprintf("Best streak: %d        Hints: %d        Avg answer: %.1fs",
		sum.MaxStreak, sum.HintsUsed, sum.AvgResponseTime.Seconds())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(extraLine))
	b.WriteString("\n\n")

	// Answer review.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	questions := s.session.Questions()
	answers := s.session.Answers()
	for i, rec := range answers {
		if i >= maxReviewRows {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).
					Render(fmt.Sprintf("... and %d more", len(answers)-maxReviewRows))))
			b.WriteString("\n")
			break
		}

		prompt := ""
		if i < len(questions) {
			prompt = questions[i].Prompt
		}

		var line string
		var style lipgloss.Style
		if rec.Correct {
			line = fmt.Sprintf("  ✓ %-20s %s", prompt, rec.CorrectAnswer)
			style = lipgloss.NewStyle().Foreground(theme.Success)
		} else {
			got := rec.Input
			if got == "" {
				got = "(no answer)"
			}
			line = fmt.Sprintf("  ✗ %-20s %s  →  %s", prompt, got, rec.CorrectAnswer)
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
