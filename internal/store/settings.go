package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbarrault/lexiq/internal/quiz"
)

// SaveQuizSettings persists the last-used quiz settings as a JSON blob.
func (s *Store) SaveQuizSettings(ctx context.Context, settings quiz.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quiz_settings (id, data) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data
	`, string(data))
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LoadQuizSettings restores the saved settings. Missing or corrupt saved
// data silently falls back to defaults; a broken settings row should never
// keep the learner from starting a quiz.
func (s *Store) LoadQuizSettings(ctx context.Context) quiz.Settings {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM quiz_settings WHERE id = 1`).Scan(&data)
	if err != nil {
		// sql.ErrNoRows and corruption alike: fresh defaults.
		return quiz.DefaultSettings()
	}

	settings := quiz.DefaultSettings()
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return quiz.DefaultSettings()
	}
	if settings.QuestionCount <= 0 || settings.TimeLimit <= 0 {
		return quiz.DefaultSettings()
	}
	return settings
}
