// Package stats shows all-time totals across sessions.
package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jbarrault/lexiq/internal/card"
	"github.com/jbarrault/lexiq/internal/screen"
	"github.com/jbarrault/lexiq/internal/store"
	"github.com/jbarrault/lexiq/internal/ui/components"
	"github.com/jbarrault/lexiq/internal/ui/theme"
)

// maxWeakCards caps the "needs work" list.
const maxWeakCards = 5

// StatsScreen displays lifetime quiz totals and the weakest cards.
type StatsScreen struct {
	totals store.Totals
	weak   []weakCard
	errMsg string
}

type weakCard struct {
	source string
	stat   card.PerformanceStat
}

var _ screen.Screen = (*StatsScreen)(nil)

// New loads totals from the store.
func New(st *store.Store) *StatsScreen {
	s := &StatsScreen{}
	if st == nil {
		return s
	}

	ctx := context.Background()
	totals, err := st.LoadTotals(ctx)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.totals = totals
	s.weak = loadWeakCards(ctx, st)
	return s
}

// loadWeakCards returns the attempted cards with the lowest success
// rates, worst first.
func loadWeakCards(ctx context.Context, st *store.Store) []weakCard {
	cards, err := st.ListCards(ctx)
	if err != nil {
		return nil
	}
	statMap, err := st.Stats(ctx)
	if err != nil {
		return nil
	}

	var weak []weakCard
	for _, c := range cards {
		stat, ok := statMap[c.ID]
		if !ok || stat.Attempts == 0 {
			continue
		}
		weak = append(weak, weakCard{source: c.Source, stat: stat})
	}
	sort.Slice(weak, func(i, j int) bool {
		return weak[i].stat.SuccessRate() < weak[j].stat.SuccessRate()
	})
	if len(weak) > maxWeakCards {
		weak = weak[:maxWeakCards]
	}
	return weak
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Your statistics"))
	b.WriteString("\n\n")

	if s.totals.Sessions == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No quizzes yet. Finish one and come back!"))
		return b.String()
	}

	rows := []struct {
		label string
		value string
	}{
		{"Quizzes completed", fmt.Sprintf("%d", s.totals.Sessions)},
		{"Questions answered", fmt.Sprintf("%d", s.totals.Answers)},
		{"Overall accuracy", fmt.Sprintf("%.0f%%", s.totals.Accuracy()*100)},
		{"Best score", fmt.Sprintf("%d", s.totals.BestScore)},
	}

	var table strings.Builder
	for _, row := range rows {
		// Pad before styling so ANSI codes don't skew the columns.
		table.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-22s", row.label)))
		table.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(row.value))
		table.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, table.String()))

	accuracyBar := components.NewProgressBar("", s.totals.Accuracy(), true, min(width-20, 50))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, accuracyBar.View()))
	b.WriteString("\n\n")

	if len(s.weak) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Needs work")))
		b.WriteString("\n\n")
		var list strings.Builder
		for _, w := range s.weak {
			list.WriteString(fmt.Sprintf("%-20s %3.0f%% of %d\n",
				w.source, w.stat.SuccessRate()*100, w.stat.Attempts))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(list.String())))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
