package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jbarrault/lexiq/internal/card"
)

// UpsertCard inserts or replaces a card, keeping any existing stat row.
func (s *Store) UpsertCard(ctx context.Context, c card.Card) error {
	translations, err := json.Marshal(c.Translations)
	if err != nil {
		return fmt.Errorf("encode translations for %s: %w", c.ID, err)
	}
	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return fmt.Errorf("encode tags for %s: %w", c.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cards (id, source, translations, difficulty, tags)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			translations = excluded.translations,
			difficulty = excluded.difficulty,
			tags = excluded.tags
	`, c.ID, c.Source, string(translations), string(c.Difficulty), string(tags))
	if err != nil {
		return fmt.Errorf("upsert card %s: %w", c.ID, err)
	}
	return nil
}

// ListCards returns every card in the store.
func (s *Store) ListCards(ctx context.Context) ([]card.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, translations, difficulty, tags FROM cards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []card.Card
	for rows.Next() {
		var c card.Card
		var translations, tags string
		var difficulty string
		if err := rows.Scan(&c.ID, &c.Source, &translations, &difficulty, &tags); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		if err := json.Unmarshal([]byte(translations), &c.Translations); err != nil {
			return nil, fmt.Errorf("decode translations for %s: %w", c.ID, err)
		}
		if err := json.Unmarshal([]byte(tags), &c.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for %s: %w", c.ID, err)
		}
		c.Difficulty = card.Difficulty(difficulty)
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// CardCount returns the number of stored cards.
func (s *Store) CardCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return n, nil
}

// Stats loads the full performance-stat map. Cards without a stat row are
// simply absent; the engine treats them as brand new.
func (s *Store) Stats(ctx context.Context) (card.StatMap, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT card_id, attempts, correct, ease, interval_days FROM card_stats`)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	defer rows.Close()

	stats := make(card.StatMap)
	for rows.Next() {
		var id string
		var st card.PerformanceStat
		if err := rows.Scan(&id, &st.Attempts, &st.Correct, &st.Ease, &st.IntervalDays); err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		stats[id] = st
	}
	return stats, rows.Err()
}

// StatFor returns one card's stat row, with found=false when none exists.
func (s *Store) StatFor(ctx context.Context, cardID string) (card.PerformanceStat, bool, error) {
	var st card.PerformanceStat
	err := s.db.QueryRowContext(ctx,
		`SELECT attempts, correct, ease, interval_days FROM card_stats WHERE card_id = ?`,
		cardID,
	).Scan(&st.Attempts, &st.Correct, &st.Ease, &st.IntervalDays)
	if err == sql.ErrNoRows {
		return card.PerformanceStat{}, false, nil
	}
	if err != nil {
		return card.PerformanceStat{}, false, fmt.Errorf("load stat for %s: %w", cardID, err)
	}
	return st, true, nil
}
