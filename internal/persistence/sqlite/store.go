// Package sqlite implements the persistence repositories on SQLite via the
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"fmt"
	"time"
)

// Store implements every repository interface declared in the persistence
// package against a single SQLite database.
type Store struct {
	pool   *ConnectionPool
	helper *QueryHelper
	mapper *ErrorMapper
	now    func() time.Time
}

// Open creates a Store for the given DSN. Migrate must be called before use.
func Open(dsn string) (*Store, error) {
	pool, err := NewConnectionPool(dsn)
	if err != nil {
		return nil, err
	}
	return &Store{
		pool:   pool,
		helper: NewQueryHelper(pool),
		mapper: NewErrorMapper(),
		now:    time.Now,
	}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.pool.Close()
}

// Ping tests the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// SetClock overrides the timestamp source. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY,
		language TEXT NOT NULL DEFAULT 'en',
		name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		is_admin INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS meetings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		wifi_network TEXT NOT NULL DEFAULT '',
		wifi_password TEXT NOT NULL DEFAULT '',
		latitude REAL,
		longitude REAL,
		pdf_file_id TEXT NOT NULL DEFAULT '',
		ended INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS participants (
		meeting_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		PRIMARY KEY (meeting_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS agenda (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		meeting_id INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL DEFAULT '',
		end_time TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS agenda_alerts (
		agenda_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		PRIMARY KEY (agenda_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		meeting_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		text TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS photos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		meeting_id INTEGER NOT NULL,
		file_id TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		meeting_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		rating TEXT,
		comment TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_agenda_meeting ON agenda(meeting_id)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_meeting ON questions(meeting_id)`,
	`CREATE INDEX IF NOT EXISTS idx_photos_meeting ON photos(meeting_id)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_meeting ON feedback(meeting_id)`,
}

// Migrate applies the schema. Statements are idempotent, so repeated calls
// are safe.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.helper.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
