package store

const schema = `
-- Flashcards. Translations and tags are stored as JSON text; the deck
-- importer owns writes, the quiz reads a snapshot at session start.
CREATE TABLE IF NOT EXISTS cards (
    id            TEXT PRIMARY KEY,
    source        TEXT NOT NULL,
    translations  TEXT NOT NULL,
    difficulty    TEXT NOT NULL DEFAULT '',
    tags          TEXT NOT NULL DEFAULT '[]'
);

-- Per-card learner history. attempts/correct are maintained from answer
-- events; ease and interval_days belong to the external review scheduler
-- and are only read here.
CREATE TABLE IF NOT EXISTS card_stats (
    card_id       TEXT PRIMARY KEY REFERENCES cards(id) ON DELETE CASCADE,
    attempts      INTEGER NOT NULL DEFAULT 0,
    correct       INTEGER NOT NULL DEFAULT 0,
    ease          REAL NOT NULL DEFAULT 0,
    interval_days REAL NOT NULL DEFAULT 0
);

-- Append-only analytics event log.
CREATE TABLE IF NOT EXISTS answer_events (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id  TEXT NOT NULL,
    card_id     TEXT NOT NULL,
    correct     INTEGER NOT NULL,
    response_ms INTEGER NOT NULL,
    mode        TEXT NOT NULL,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS session_events (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id     TEXT NOT NULL,
    mode           TEXT NOT NULL,
    score          INTEGER NOT NULL,
    accuracy       REAL NOT NULL,
    question_count INTEGER NOT NULL,
    correct_count  INTEGER NOT NULL,
    max_streak     INTEGER NOT NULL,
    hints_used     INTEGER NOT NULL,
    duration_secs  INTEGER NOT NULL,
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Last-used quiz settings, one JSON blob.
CREATE TABLE IF NOT EXISTS quiz_settings (
    id   INTEGER PRIMARY KEY CHECK (id = 1),
    data TEXT NOT NULL
);
`
