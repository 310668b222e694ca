package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jbarrault/lexiq/internal/router"
	"github.com/jbarrault/lexiq/internal/screen"
	"github.com/jbarrault/lexiq/internal/screens/home"
	"github.com/jbarrault/lexiq/internal/store"
	"github.com/jbarrault/lexiq/internal/ui/layout"
)

// Options carries the dependencies injected into the TUI.
type Options struct {
	Store *store.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	st        *store.Store
	width     int
	height    int
	cardCount int
	bestScore int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(home.New(opts.Store)),
		st:     opts.Store,
	}
	m.refreshHeaderStats()
	return m
}

// refreshHeaderStats reloads the card count and best score shown in the
// header. Called on navigation, not per frame.
func (m *AppModel) refreshHeaderStats() {
	if m.st == nil {
		return
	}
	ctx := context.Background()
	if n, err := m.st.CardCount(ctx); err == nil {
		m.cardCount = n
	}
	if totals, err := m.st.LoadTotals(ctx); err == nil {
		m.bestScore = totals.BestScore
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// Let the active screen intercept Esc (quit confirm).
				if _, handles := m.router.Active().(escHandler); !handles {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
			}
		}
	}

	cmd := m.router.Update(msg)

	switch msg.(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		m.refreshHeaderStats()
	}

	return m, cmd
}

// escHandler marks screens that manage the Esc key themselves.
type escHandler interface {
	HandlesEsc()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.cardCount, m.bestScore, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
