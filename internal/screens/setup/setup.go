// Package setup is the pre-quiz settings screen. Edited settings are
// persisted and survive restarts.
package setup

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jbarrault/lexiq/internal/card"
	"github.com/jbarrault/lexiq/internal/quiz"
	"github.com/jbarrault/lexiq/internal/router"
	"github.com/jbarrault/lexiq/internal/screen"
	quizscreen "github.com/jbarrault/lexiq/internal/screens/quiz"
	"github.com/jbarrault/lexiq/internal/store"
	"github.com/jbarrault/lexiq/internal/ui/layout"
	"github.com/jbarrault/lexiq/internal/ui/theme"
)

// Field identifiers. The threshold group only appears when the question
// type is adaptive, and topic rows only when the deck carries tags, so
// navigation runs over visibleFields rather than these values directly.
const (
	fieldMode = iota
	fieldQuestionCount
	fieldTimeLimit
	fieldDifficulty
	fieldQuestionType
	fieldShuffle
	fieldMinAttempts
	fieldMCQRate
	fieldMCQEase
	fieldMCQInterval
	fieldFBRate
	fieldFBEase
	fieldFBInterval
	fieldTagBase // fieldTagBase+i selects the i-th topic tag
)

var (
	modes = []quiz.Mode{
		quiz.ModeClassic,
		quiz.ModeTimed,
		quiz.ModeSurvival,
		quiz.ModeProgressive,
		quiz.ModeUntimed,
	}
	questionCounts = []int{5, 10, 15, 20, 25, 30}
	timeLimits     = []int{10, 15, 20, 30, 45, 60}
	difficulties   = []string{quiz.DifficultyMixed, "easy", "medium", "hard"}
	questionTypes  = []quiz.QuestionType{
		quiz.TypeTranslation,
		quiz.TypeMultipleChoice,
		quiz.TypeFillBlanks,
		quiz.TypeAdaptive,
		quiz.TypeOpenOnly,
	}
)

// SetupScreen lets the learner tune the session before starting it.
type SetupScreen struct {
	st       *store.Store
	settings quiz.Settings
	tags     []string
	field    int
	errMsg   string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen with the persisted settings preloaded.
func New(st *store.Store) *SetupScreen {
	settings := quiz.DefaultSettings()
	var tags []string
	if st != nil {
		ctx := context.Background()
		settings = st.LoadQuizSettings(ctx)
		if cards, err := st.ListCards(ctx); err == nil {
			tags = collectTags(cards)
		}
	}
	return &SetupScreen{st: st, settings: settings, tags: tags}
}

// collectTags returns the distinct topic tags across the deck, sorted.
func collectTags(cards []card.Card) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, c := range cards {
		for _, t := range c.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Quiz Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// visibleFields is the navigable field list for the current settings:
// the base fields, the threshold group when the type is adaptive, and
// one row per topic tag.
func (s *SetupScreen) visibleFields() []int {
	fields := []int{
		fieldMode,
		fieldQuestionCount,
		fieldTimeLimit,
		fieldDifficulty,
		fieldQuestionType,
		fieldShuffle,
	}
	if s.settings.QuestionType == quiz.TypeAdaptive {
		fields = append(fields,
			fieldMinAttempts,
			fieldMCQRate,
			fieldMCQEase,
			fieldMCQInterval,
			fieldFBRate,
			fieldFBEase,
			fieldFBInterval,
		)
	}
	for i := range s.tags {
		fields = append(fields, fieldTagBase+i)
	}
	return fields
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.field > 0 {
			s.field--
		}
	case "down", "j":
		if s.field < len(s.visibleFields())-1 {
			s.field++
		}
	case "left", "h":
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "enter":
		return s.startQuiz()
	}

	return s, nil
}

// cycle steps the active field's value by delta. List-backed fields wrap
// around, numeric thresholds clamp at their bounds, tag rows toggle.
func (s *SetupScreen) cycle(delta int) {
	s.errMsg = ""
	id := s.visibleFields()[s.field]
	adaptive := &s.settings.Adaptive

	switch id {
	case fieldMode:
		i := indexOf(modes, s.settings.Mode)
		s.settings.Mode = modes[wrap(i+delta, len(modes))]
	case fieldQuestionCount:
		i := indexOf(questionCounts, s.settings.QuestionCount)
		s.settings.QuestionCount = questionCounts[wrap(i+delta, len(questionCounts))]
	case fieldTimeLimit:
		i := indexOf(timeLimits, s.settings.TimeLimit)
		s.settings.TimeLimit = timeLimits[wrap(i+delta, len(timeLimits))]
	case fieldDifficulty:
		i := indexOf(difficulties, s.settings.Difficulty)
		s.settings.Difficulty = difficulties[wrap(i+delta, len(difficulties))]
	case fieldQuestionType:
		i := indexOf(questionTypes, s.settings.QuestionType)
		s.settings.QuestionType = questionTypes[wrap(i+delta, len(questionTypes))]
		// Leaving adaptive shrinks the field list; stay on a valid row.
		if n := len(s.visibleFields()); s.field >= n {
			s.field = n - 1
		}
	case fieldShuffle:
		s.settings.ShuffleQuestions = !s.settings.ShuffleQuestions
	case fieldMinAttempts:
		adaptive.MinAttemptsForMCQ = stepInt(adaptive.MinAttemptsForMCQ, delta, 1, 0, 10)
	case fieldMCQRate:
		adaptive.MCQSuccessRate = stepFloat(adaptive.MCQSuccessRate, delta, 0.05, 0, 1)
	case fieldMCQEase:
		adaptive.MCQEase = stepFloat(adaptive.MCQEase, delta, 0.1, 1, 3)
	case fieldMCQInterval:
		adaptive.MCQMinIntervalDays = stepFloat(adaptive.MCQMinIntervalDays, delta, 1, 0, 30)
	case fieldFBRate:
		adaptive.FBSuccessRate = stepFloat(adaptive.FBSuccessRate, delta, 0.05, 0, 1)
	case fieldFBEase:
		adaptive.FBEase = stepFloat(adaptive.FBEase, delta, 0.1, 1, 3)
	case fieldFBInterval:
		adaptive.FBMinIntervalDays = stepFloat(adaptive.FBMinIntervalDays, delta, 1, 0, 30)
	default:
		s.toggleTag(s.tags[id-fieldTagBase])
	}
}

// toggleTag adds the tag to the include filter, or removes it when already
// present. An empty filter means every topic is in play.
func (s *SetupScreen) toggleTag(tag string) {
	if i := slices.Index(s.settings.IncludeTags, tag); i >= 0 {
		s.settings.IncludeTags = slices.Delete(s.settings.IncludeTags, i, i+1)
		return
	}
	s.settings.IncludeTags = append(s.settings.IncludeTags, tag)
}

// startQuiz persists the settings, builds the session over the current card
// pool, and pushes the quiz screen.
func (s *SetupScreen) startQuiz() (screen.Screen, tea.Cmd) {
	ctx := context.Background()

	if s.st != nil {
		_ = s.st.SaveQuizSettings(ctx, s.settings)
	}

	cards, err := s.st.ListCards(ctx)
	if err != nil {
		s.errMsg = fmt.Sprintf("load cards: %v", err)
		return s, nil
	}
	statMap, err := s.st.Stats(ctx)
	if err != nil {
		s.errMsg = fmt.Sprintf("load stats: %v", err)
		return s, nil
	}

	session := quiz.New(cards, statMap, s.settings)
	if err := session.Start(); err != nil {
		if errors.Is(err, quiz.ErrNoQuestions) {
			s.errMsg = "No questions match these settings. Try a different difficulty."
		} else {
			s.errMsg = err.Error()
		}
		return s, nil
	}

	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: quizscreen.New(session, s.st)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Set up your quiz"))
	b.WriteString("\n\n")

	var form strings.Builder
	for i, id := range s.visibleFields() {
		label, value, dim := s.fieldRow(id)

		marker := "   "
		valStr := fmt.Sprintf("◂ %s ▸", value)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if dim {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		if i == s.field {
			marker = " ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		form.WriteString(style.Render(fmt.Sprintf("%s%-20s %s", marker, label, valStr)))
		form.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form.String()))

	if s.settings.Mode == quiz.ModeSurvival {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Survival: one wrong answer ends the quiz"))
	}
	if len(s.tags) > 0 && len(s.settings.IncludeTags) == 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No topics selected: all topics are included"))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

// fieldRow returns the label, display value, and dim flag for a field.
func (s *SetupScreen) fieldRow(id int) (string, string, bool) {
	a := s.settings.Adaptive
	switch id {
	case fieldMode:
		return "Mode", string(s.settings.Mode), false
	case fieldQuestionCount:
		return "Questions", fmt.Sprintf("%d", s.settings.QuestionCount), false
	case fieldTimeLimit:
		return "Time per question", fmt.Sprintf("%ds", s.settings.TimeLimit), !s.settings.Timed()
	case fieldDifficulty:
		return "Difficulty", s.settings.Difficulty, false
	case fieldQuestionType:
		return "Question type", string(s.settings.QuestionType), false
	case fieldShuffle:
		return "Shuffle", onOff(s.settings.ShuffleQuestions), false
	case fieldMinAttempts:
		return "Min attempts (MCQ)", fmt.Sprintf("%d", a.MinAttemptsForMCQ), false
	case fieldMCQRate:
		return "Success rate (MCQ)", fmt.Sprintf("%.2f", a.MCQSuccessRate), false
	case fieldMCQEase:
		return "Ease (MCQ)", fmt.Sprintf("%.1f", a.MCQEase), false
	case fieldMCQInterval:
		return "Interval days (MCQ)", fmt.Sprintf("%.0f", a.MCQMinIntervalDays), false
	case fieldFBRate:
		return "Success rate (fill)", fmt.Sprintf("%.2f", a.FBSuccessRate), false
	case fieldFBEase:
		return "Ease (fill)", fmt.Sprintf("%.1f", a.FBEase), false
	case fieldFBInterval:
		return "Interval days (fill)", fmt.Sprintf("%.0f", a.FBMinIntervalDays), false
	default:
		tag := s.tags[id-fieldTagBase]
		return "Topic: " + tag, onOff(slices.Contains(s.settings.IncludeTags, tag)), false
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// stepInt nudges v by delta steps and clamps to [lo, hi].
func stepInt(v, delta, step, lo, hi int) int {
	v += delta * step
	return max(lo, min(hi, v))
}

// stepFloat nudges v by delta steps and clamps to [lo, hi]. Rounds to two
// decimals so repeated steps don't accumulate float drift.
func stepFloat(v float64, delta int, step, lo, hi float64) float64 {
	v = math.Round((v+float64(delta)*step)*100) / 100
	return math.Max(lo, math.Min(hi, v))
}

// indexOf returns 0 when the value is not in the list, so a persisted
// out-of-list value snaps back to the first option on the next cycle.
func indexOf[T comparable](list []T, v T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return 0
}
