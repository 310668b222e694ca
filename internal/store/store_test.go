package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbarrault/lexiq/internal/card"
	"github.com/jbarrault/lexiq/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lexiq.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsertAndListCards(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	c := card.Card{
		ID:           "c1",
		Source:       "bonjour",
		Translations: map[string]string{"en": "hello", "es": "hola"},
		Difficulty:   card.DifficultyEasy,
		Tags:         []string{"greetings"},
	}
	require.NoError(t, s.UpsertCard(ctx, c))

	// Upsert again with a changed translation; no duplicate row.
	c.Translations["en"] = "hello there"
	require.NoError(t, s.UpsertCard(ctx, c))

	cards, err := s.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "hello there", cards[0].Translations["en"])
	assert.Equal(t, card.DifficultyEasy, cards[0].Difficulty)
	assert.Equal(t, []string{"greetings"}, cards[0].Tags)

	n, err := s.CardCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordAnswerBumpsStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertCard(ctx, card.Card{
		ID: "c1", Source: "chat", Translations: map[string]string{"en": "cat"},
	}))

	events := []quiz.AnswerEvent{
		{CardID: "c1", Correct: true, ResponseTimeMs: 1200, Mode: quiz.ModeClassic},
		{CardID: "c1", Correct: false, ResponseTimeMs: 4000, Mode: quiz.ModeClassic},
		{CardID: "c1", Correct: true, ResponseTimeMs: 900, Mode: quiz.ModeClassic},
	}
	for _, ev := range events {
		require.NoError(t, s.RecordAnswer(ctx, "session-1", ev))
	}

	st, found, err := s.StatFor(ctx, "c1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, st.Attempts)
	assert.Equal(t, 2, st.Correct)
	// Scheduler-owned columns stay untouched.
	assert.Zero(t, st.Ease)
	assert.Zero(t, st.IntervalDays)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, st, stats["c1"])
}

func TestRecordSessionAndTotals(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertCard(ctx, card.Card{
		ID: "c1", Source: "chat", Translations: map[string]string{"en": "cat"},
	}))
	require.NoError(t, s.RecordAnswer(ctx, "s1", quiz.AnswerEvent{CardID: "c1", Correct: true, ResponseTimeMs: 800, Mode: quiz.ModeTimed}))

	sum := quiz.Summary{
		Score:         230,
		Accuracy:      1.0,
		CorrectCount:  1,
		TotalTime:     42 * time.Second,
		MaxStreak:     1,
		QuestionCount: 1,
		Mode:          quiz.ModeTimed,
	}
	require.NoError(t, s.RecordSession(ctx, "s1", sum))

	totals, err := s.LoadTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, totals.Sessions)
	assert.Equal(t, 1, totals.Answers)
	assert.Equal(t, 1, totals.Correct)
	assert.Equal(t, 230, totals.BestScore)
	assert.Equal(t, 1.0, totals.Accuracy())
}

func TestQuizSettingsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Nothing saved yet: defaults.
	assert.Equal(t, quiz.DefaultSettings(), s.LoadQuizSettings(ctx))

	settings := quiz.DefaultSettings()
	settings.Mode = quiz.ModeSurvival
	settings.QuestionCount = 25
	settings.QuestionType = quiz.TypeAdaptive
	settings.Adaptive.MinAttemptsForMCQ = 5
	require.NoError(t, s.SaveQuizSettings(ctx, settings))

	assert.Equal(t, settings, s.LoadQuizSettings(ctx))
}

func TestQuizSettingsCorruptFallsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx,
		`INSERT INTO quiz_settings (id, data) VALUES (1, 'not json')`)
	require.NoError(t, err)

	assert.Equal(t, quiz.DefaultSettings(), s.LoadQuizSettings(ctx))
}
