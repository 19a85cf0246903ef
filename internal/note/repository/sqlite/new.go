// Package sqlite stores notes in a local SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"smart-notes/internal/note/repository"
	"smart-notes/pkg/log"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS notes (
	id                TEXT PRIMARY KEY,
	content           TEXT NOT NULL,
	created_at        TEXT NOT NULL,
	tags              TEXT NOT NULL DEFAULT '[]',
	summary           TEXT NOT NULL DEFAULT '',
	categories        TEXT NOT NULL DEFAULT '[]',
	due_date          TEXT,
	venue             TEXT,
	author            TEXT,
	completed         INTEGER NOT NULL DEFAULT 0,
	calendar_event_id TEXT NOT NULL DEFAULT '',
	calendar_link     TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return db, nil
}

// New creates a SQLite-backed Repository on a database prepared by Open.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("note/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("note/repository/sqlite.%s", method)
}
