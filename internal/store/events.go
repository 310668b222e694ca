package store

import (
	"context"
	"fmt"

	"github.com/jbarrault/lexiq/internal/quiz"
)

// RecordAnswer appends an answer event and bumps the card's attempt
// counters in one transaction. The ease/interval columns are untouched;
// those belong to the review scheduler.
func (s *Store) RecordAnswer(ctx context.Context, sessionID string, ev quiz.AnswerEvent) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record answer: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO answer_events (session_id, card_id, correct, response_ms, mode)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, ev.CardID, ev.Correct, ev.ResponseTimeMs, string(ev.Mode))
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}

	correctDelta := 0
	if ev.Correct {
		correctDelta = 1
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO card_stats (card_id, attempts, correct)
		VALUES (?, 1, ?)
		ON CONFLICT(card_id) DO UPDATE SET
			attempts = attempts + 1,
			correct = correct + excluded.correct
	`, ev.CardID, correctDelta)
	if err != nil {
		return fmt.Errorf("bump card stats: %w", err)
	}

	return tx.Commit()
}

// RecordSession appends a session-complete event carrying the summary
// aggregates.
func (s *Store) RecordSession(ctx context.Context, sessionID string, sum quiz.Summary) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_events
			(session_id, mode, score, accuracy, question_count, correct_count, max_streak, hints_used, duration_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sessionID, string(sum.Mode), sum.Score, sum.Accuracy, sum.QuestionCount,
		sum.CorrectCount, sum.MaxStreak, sum.HintsUsed, int(sum.TotalTime.Seconds()))
	if err != nil {
		return fmt.Errorf("append session event: %w", err)
	}
	return nil
}

// Totals aggregates the event log for the stats command.
type Totals struct {
	Sessions     int
	Answers      int
	Correct      int
	BestScore    int
	MeanAccuracy float64
}

// Accuracy returns overall answer accuracy, 0 when nothing was answered.
func (t Totals) Accuracy() float64 {
	if t.Answers == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Answers)
}

// LoadTotals computes lifetime aggregates from the event log.
func (s *Store) LoadTotals(ctx context.Context) (Totals, error) {
	var t Totals
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(MAX(score), 0),
		       COALESCE(AVG(accuracy), 0)
		FROM session_events
	`).Scan(&t.Sessions, &t.BestScore, &t.MeanAccuracy)
	if err != nil {
		return Totals{}, fmt.Errorf("aggregate sessions: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM answer_events
	`).Scan(&t.Answers, &t.Correct)
	if err != nil {
		return Totals{}, fmt.Errorf("aggregate answers: %w", err)
	}
	return t, nil
}
