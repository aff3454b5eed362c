// Package audit records tool invocations in a local sqlite database. The
// log is write-only from the server's point of view: no engine reads it
// back, so responses stay a pure function of their inputs.
package audit

import (
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
	mu sync.Mutex
}

type Entry struct {
	Tool     string
	Outcome  string
	Duration time.Duration
}

func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, err
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS invocations (
		id TEXT PRIMARY KEY,
		tool TEXT NOT NULL,
		outcome TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_invocations_tool ON invocations(tool);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Record(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO invocations (id, tool, outcome, duration_ms) VALUES (?, ?, ?, ?)",
		uuid.NewString(), entry.Tool, entry.Outcome, entry.Duration.Milliseconds())
	return err
}

func (s *Store) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM invocations").Scan(&count)
	return count, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
