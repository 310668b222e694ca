package setup

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jbarrault/lexiq/internal/card"
	"github.com/jbarrault/lexiq/internal/quiz"
	"github.com/jbarrault/lexiq/internal/screen"
	"github.com/jbarrault/lexiq/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSetupScreen_DefaultsWhenUnsaved(t *testing.T) {
	s := New(openTestStore(t))
	if s.settings.Mode != quiz.ModeClassic {
		t.Errorf("mode = %q, want classic", s.settings.Mode)
	}
	if s.settings.QuestionCount != 10 {
		t.Errorf("question count = %d, want 10", s.settings.QuestionCount)
	}
}

func TestSetupScreen_CycleMode(t *testing.T) {
	s := New(openTestStore(t))

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	ss := scr.(*SetupScreen)

	if ss.settings.Mode != quiz.ModeTimed {
		t.Errorf("mode = %q, want timed after one right", ss.settings.Mode)
	}

	scr, _ = ss.Update(specialKey(tea.KeyLeft))
	scr, _ = scr.Update(specialKey(tea.KeyLeft))
	ss = scr.(*SetupScreen)

	if ss.settings.Mode != quiz.ModeUntimed {
		t.Errorf("mode = %q, want untimed after wrapping left", ss.settings.Mode)
	}
}

func TestSetupScreen_ThresholdFieldsOnlyWhenAdaptive(t *testing.T) {
	s := New(openTestStore(t))

	if n := len(s.visibleFields()); n != 6 {
		t.Fatalf("visible fields = %d, want 6 for non-adaptive type", n)
	}

	s.settings.QuestionType = quiz.TypeAdaptive
	if n := len(s.visibleFields()); n != 13 {
		t.Fatalf("visible fields = %d, want 13 with the threshold group", n)
	}
}

func TestSetupScreen_EditThresholds(t *testing.T) {
	s := New(openTestStore(t))
	s.settings.QuestionType = quiz.TypeAdaptive

	// First threshold row sits right after the six base fields.
	s.field = 6
	s.cycle(1)
	if got := s.settings.Adaptive.MinAttemptsForMCQ; got != 4 {
		t.Errorf("min attempts = %d, want 4 after one step", got)
	}
	s.cycle(-1)
	if got := s.settings.Adaptive.MinAttemptsForMCQ; got != 3 {
		t.Errorf("min attempts = %d, want 3 after stepping back", got)
	}

	// Success rates clamp at 1.0 instead of wrapping.
	s.field = 7
	s.settings.Adaptive.MCQSuccessRate = 1.0
	s.cycle(1)
	if got := s.settings.Adaptive.MCQSuccessRate; got != 1.0 {
		t.Errorf("success rate = %f, want clamp at 1.0", got)
	}
	s.cycle(-1)
	if got := s.settings.Adaptive.MCQSuccessRate; got != 0.95 {
		t.Errorf("success rate = %f, want 0.95 after one step down", got)
	}
}

func TestSetupScreen_ToggleTopicTags(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	cards := []card.Card{
		{ID: "c1", Source: "pomme", Translations: map[string]string{"en": "apple"}, Tags: []string{"food"}},
		{ID: "c2", Source: "chien", Translations: map[string]string{"en": "dog"}, Tags: []string{"animals"}},
	}
	for _, c := range cards {
		if err := st.UpsertCard(ctx, c); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	s := New(st)
	if len(s.tags) != 2 || s.tags[0] != "animals" || s.tags[1] != "food" {
		t.Fatalf("tags = %v, want [animals food]", s.tags)
	}

	// Tag rows follow the base fields when the type is not adaptive.
	s.field = 6
	s.cycle(1)
	if len(s.settings.IncludeTags) != 1 || s.settings.IncludeTags[0] != "animals" {
		t.Fatalf("include tags = %v, want [animals]", s.settings.IncludeTags)
	}

	s.cycle(1)
	if len(s.settings.IncludeTags) != 0 {
		t.Errorf("include tags = %v, want empty after toggling off", s.settings.IncludeTags)
	}
}

func TestSetupScreen_StartWithoutCards(t *testing.T) {
	s := New(openTestStore(t))

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SetupScreen)

	if cmd != nil {
		t.Error("expected no navigation with an empty card pool")
	}
	if ss.errMsg == "" {
		t.Error("expected an error message with an empty card pool")
	}
}

func TestSetupScreen_StartPersistsSettingsAndNavigates(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	cards := []card.Card{
		{ID: "c1", Source: "chien", Translations: map[string]string{"en": "dog"}},
		{ID: "c2", Source: "chat", Translations: map[string]string{"en": "cat"}},
	}
	for _, c := range cards {
		if err := st.UpsertCard(ctx, c); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	s := New(st)
	s.field = fieldMode
	s.cycle(1) // classic -> timed

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command when starting")
	}

	saved := st.LoadQuizSettings(ctx)
	if saved.Mode != quiz.ModeTimed {
		t.Errorf("persisted mode = %q, want timed", saved.Mode)
	}
}
