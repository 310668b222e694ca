package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jbarrault/lexiq/internal/router"
	"github.com/jbarrault/lexiq/internal/screen"
	"github.com/jbarrault/lexiq/internal/screens/setup"
	"github.com/jbarrault/lexiq/internal/screens/stats"
	"github.com/jbarrault/lexiq/internal/store"
	"github.com/jbarrault/lexiq/internal/ui/components"
	"github.com/jbarrault/lexiq/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	cardCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *store.Store) *HomeScreen {
	var cardCount int
	if st != nil {
		cardCount, _ = st.CardCount(context.Background())
	}

	items := []components.MenuItem{
		{Label: "START QUIZ", Disabled: cardCount == 0, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(st)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(st)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		cardCount: cardCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("L E X I Q"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Flashcard quizzes for language learners"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if h.cardCount == 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No cards yet. Import a deck with: lexiq import <deck.json>"))
	}

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
