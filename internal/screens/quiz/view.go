package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/jbarrault/lexiq/internal/quiz"
	"github.com/jbarrault/lexiq/internal/ui/components"
	"github.com/jbarrault/lexiq/internal/ui/theme"
)

// lowTimeThreshold is the countdown value (seconds) at which the timer
// bar turns red.
const lowTimeThreshold = 5

func (s *QuizScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the active question with the status line and
// countdown bar.
func (s *QuizScreen) renderQuestion(width int) string {
	q := s.session.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Status line: position left, score / streak / timer right.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.session.Index()+1, len(s.session.Questions())))

	right := fmt.Sprintf("%s %d   %s %d",
		lipgloss.NewStyle().Foreground(theme.Accent).Render("★"),
		s.session.Score(),
		lipgloss.NewStyle().Foreground(theme.Success).Render("⚡"),
		s.session.Streak(),
	)
	if s.session.Settings().Timed() {
		right += fmt.Sprintf("   %s %ds",
			lipgloss.NewStyle().Foreground(theme.Accent).Render("◷"),
			s.session.TimeLeft(),
		)
	}
	right = lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")

	// Countdown bar.
	if s.session.Settings().Timed() {
		limit := s.session.Settings().TimeLimit
		bar := components.NewProgressBar("", float64(s.session.TimeLeft())/float64(limit), false, width-8)
		if s.session.TimeLeft() <= lowTimeThreshold {
			bar.Fill = theme.Error
		}
		b.WriteString("  " + bar.View())
		b.WriteString("\n")
	}
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(promptLabel(q)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n")

	if q.Type == engine.TypeFillBlanks {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(q.Sentence))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Answer area.
	if s.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}
	b.WriteString("\n\n")

	// Hint line.
	if s.session.HintShown() {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Hint: " + q.Hint))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Tab for a hint (-20 pts)"))
	}

	return b.String()
}

// promptLabel describes what the learner must do with the prompt.
func promptLabel(q *engine.Question) string {
	switch q.Type {
	case engine.TypeMultipleChoice:
		return fmt.Sprintf("Pick the %s translation of", strings.ToUpper(q.TargetLanguage))
	case engine.TypeFillBlanks:
		return fmt.Sprintf("Complete the %s translation of", strings.ToUpper(q.TargetLanguage))
	default:
		return fmt.Sprintf("Translate into %s", strings.ToUpper(q.TargetLanguage))
	}
}

// renderFeedback renders the correct/incorrect overlay.
func (s *QuizScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	if s.lastRecord.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
		if s.session.Streak() > 1 {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render(fmt.Sprintf("Streak: %d", s.session.Streak())))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", s.lastRecord.CorrectAnswer)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End quiz early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far are kept and scored."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, show my results"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
