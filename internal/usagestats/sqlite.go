package usagestats

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema

const countersSchema = `
CREATE TABLE IF NOT EXISTS usage_counters (
    name  TEXT PRIMARY KEY,
    value INTEGER NOT NULL DEFAULT 0
);
`

const timingSchema = `
CREATE TABLE IF NOT EXISTS usage_timings (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    value      INTEGER NOT NULL,
    recorded_at TEXT NOT NULL
);
`

const timingIndex = `
CREATE INDEX IF NOT EXISTS idx_usage_timings_name ON usage_timings(name);
`

// #endregion schema

// #region sqlite-sink

// SQLiteSink persists counters and timing observations in a SQLite
// database, one row per counter and one row per timing observation.
// Counters are accumulated with an upsert; timings are append-only so a
// histogram can be reconstructed later.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLiteSink opens (creating if absent) the counters and timings tables
// in db.
func NewSQLiteSink(db *sql.DB) (*SQLiteSink, error) {
	if _, err := db.Exec(countersSchema); err != nil {
		return nil, err
	}
	if _, err := db.Exec(timingSchema); err != nil {
		return nil, err
	}
	if _, err := db.Exec(timingIndex); err != nil {
		return nil, err
	}
	return &SQLiteSink{db: db}, nil
}

// #endregion sqlite-sink

// #region writes

// IncrementCount increments the named counter by one.
func (s *SQLiteSink) IncrementCount(name string) {
	s.IncrementCountBy(name, 1)
}

// IncrementCountBy upserts the named counter, adding delta to its current
// value. Write errors are swallowed: usage stats are fire-and-forget and
// must never affect the converter's own return value.
func (s *SQLiteSink) IncrementCountBy(name string, delta int64) {
	_, _ = s.db.Exec(`
		INSERT INTO usage_counters (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = value + excluded.value`,
		name, delta,
	)
}

// UpdateTiming appends one timing observation under a fresh row id.
func (s *SQLiteSink) UpdateTiming(name string, value int64) {
	_, _ = s.db.Exec(`
		INSERT INTO usage_timings (id, name, value, recorded_at)
		VALUES (?, ?, ?, ?)`,
		uuid.NewString(), name, value, time.Now().Format(time.RFC3339),
	)
}

// #endregion writes
