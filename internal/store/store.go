// Package store is the MySQL-backed directory store: members, categories,
// community members, SEO overrides, and the write-only submission tables.
package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("record not found")

// Store wraps the primary read/write connection pool.
type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}
