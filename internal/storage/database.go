// Package storage persists the document catalog: which files the last index
// rebuild ingested and when. Chunk text and embeddings live in the vector
// store only.
package storage

import (
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			filename TEXT PRIMARY KEY,
			filetype TEXT NOT NULL,
			pages INTEGER NOT NULL,
			chunks INTEGER NOT NULL,
			size_kb REAL NOT NULL,
			modified_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS rebuilds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			rebuilt_at DATETIME NOT NULL,
			documents INTEGER NOT NULL,
			chunks INTEGER NOT NULL,
			embedding_model TEXT NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
