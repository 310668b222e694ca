package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jbarrault/lexiq/internal/ui/theme"
)

// MultiChoice is a multiple-choice option selector.
type MultiChoice struct {
	Choices  []string
	Selected int
}

// NewMultiChoice creates a selector over the given choices.
func NewMultiChoice(choices []string) MultiChoice {
	return MultiChoice{Choices: choices}
}

// Update handles keyboard navigation. Number keys jump directly to a
// choice; the caller decides when a jump also submits.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(m.Choices) {
			m.Selected = idx
		}
	}

	return m, nil
}

// Value returns the currently selected choice, or "" when empty.
func (m MultiChoice) Value() string {
	if m.Selected < 0 || m.Selected >= len(m.Choices) {
		return ""
	}
	return m.Choices[m.Selected]
}

// View renders the choices with the selection marker.
func (m MultiChoice) View() string {
	var s string
	for i, choice := range m.Choices {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		if i == m.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
