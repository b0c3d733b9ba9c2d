/*
Package storage implements the persistence layer for ratings and workspace state.

This package provides a small key-value store backed by SQLite with graceful
degradation if the database is unavailable: reads fall back to "not found" and
writes become no-ops, so the rest of the application keeps working from memory.

The database is stored at ~/.tool-advisor/advisor.db and uses modernc.org/sqlite
(a pure Go, CGo-free implementation).
*/
package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Well-known slots in the key-value store.
const (
	// KeyRatings holds the per-tool rating aggregate map (JSON).
	KeyRatings = "ratings"

	// KeyUserRatings holds the local user's per-tool current rating map (JSON).
	KeyUserRatings = "user-ratings"

	// KeyWorkspaceResource holds the last-submitted workspace resource URL.
	KeyWorkspaceResource = "workspace-resource"
)

// UserRatingsKey returns the user-ratings slot for a specific user ID.
// Users sharing a database keep separate current-rating maps while
// contributing to the same aggregates. An empty ID falls back to the
// shared default slot.
func UserRatingsKey(userID string) string {
	if userID == "" {
		return KeyUserRatings
	}
	return KeyUserRatings + ":" + userID
}

// KV defines the interface for key-value persistence operations.
type KV interface {
	// Get retrieves the value stored under key. The second return value is
	// false when the key is absent.
	Get(key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// SQLiteKV implements the KV interface using SQLite.
type SQLiteKV struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// NewKV creates a new SQLite key-value store at the default location.
//
// The database is created at ~/.tool-advisor/advisor.db. If the directory
// doesn't exist, it will be created. If the database cannot be opened, the
// store will be disabled but operations will not fail.
func NewKV() *SQLiteKV {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: failed to get home directory: %v", err)
		return &SQLiteKV{enabled: false}
	}

	dbDir := filepath.Join(home, ".tool-advisor")
	return NewKVAt(filepath.Join(dbDir, "advisor.db"))
}

// NewKVAt creates a new SQLite key-value store at a specific path.
func NewKVAt(dbPath string) *SQLiteKV {
	return &SQLiteKV{
		dbPath:  dbPath,
		enabled: true,
	}
}

// Init opens the database and runs migrations.
//
// If initialization fails, the store is disabled and subsequent operations
// become no-ops (graceful degradation).
func (s *SQLiteKV) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		// Ensure directory exists
		dbDir := filepath.Dir(s.dbPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			initErr = fmt.Errorf("failed to create db directory: %w", err)
			s.enabled = false
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
	})

	return initErr
}

// Get retrieves the value stored under key.
func (s *SQLiteKV) Get(key string) ([]byte, bool, error) {
	if !s.enabled || s.db == nil {
		return nil, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		log.Printf("Warning: failed to read key %q: %v", key, err)
		return nil, false, nil
	}

	return value, true, nil
}

// Put stores value under key, replacing any previous value.
//
// Write failures are logged and swallowed: the in-memory state upstream
// stays authoritative even if persistence degrades.
func (s *SQLiteKV) Put(key string, value []byte) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := s.db.Exec(query, key, value); err != nil {
		log.Printf("Warning: failed to write key %q: %v", key, err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteKV) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	s.db = nil
	return nil
}
