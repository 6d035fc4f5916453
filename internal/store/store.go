/*
Package store implements the durable key-value layer behind user
preferences, recents, favorites, and the mock account records.

Values are JSON blobs keyed by namespaced strings (see keys.go). The
store is backed by SQLite via modernc.org/sqlite (pure Go, CGo-free)
and degrades gracefully: if the database cannot be opened, reads return
empty defaults and writes become no-ops. Callers never see an error
from a read or write; failures are only visible in the logs.
*/
package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed key-value store with silent-failure semantics.
type Store struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
	log      *zap.Logger
}

// New creates a store persisting to dbPath. Call Init before use.
func New(dbPath string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		dbPath:  dbPath,
		enabled: true,
		log:     log,
	}
}

// Init opens the database and runs migrations.
//
// If initialization fails the store is disabled and every subsequent
// operation becomes a no-op returning empty defaults.
func (s *Store) Init() error {
	var initErr error
	s.initOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
			initErr = err
			s.enabled = false
			s.log.Warn("failed to create store directory", zap.Error(err))
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = err
			s.enabled = false
			s.log.Warn("failed to open store database", zap.Error(err))
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			initErr = err
			s.enabled = false
			s.log.Warn("failed to ping store database", zap.Error(err))
			return
		}

		if err := s.runMigrations(); err != nil {
			initErr = err
			s.enabled = false
			s.log.Warn("failed to run store migrations", zap.Error(err))
			return
		}
	})
	return initErr
}

// Close closes the database connection.
func (s *Store) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Close()
	s.db = nil
	return err
}

// Enabled reports whether the backing database is usable.
func (s *Store) Enabled() bool {
	return s.enabled && s.db != nil
}

// Read returns the raw value for a key, or false if the key is absent
// or the store is unavailable.
func (s *Store) Read(key string) ([]byte, bool) {
	if !s.Enabled() {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var value []byte
	row := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if err != sql.ErrNoRows {
			s.log.Warn("store read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return value, true
}

// ReadJSON unmarshals the value for key into out. It returns false when
// the key is absent, the store is unavailable, or the stored value does
// not parse; corrupt data is treated as empty, never as fatal.
func (s *Store) ReadJSON(key string, out any) bool {
	raw, ok := s.Read(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn("store value is malformed, treating as empty",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Write stores a raw value under key. On failure the prior stored value
// is left unchanged and the failure is logged; callers are not notified.
func (s *Store) Write(key string, value []byte) {
	if !s.Enabled() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		s.log.Warn("store write failed", zap.String("key", key), zap.Error(err))
	}
}

// WriteJSON marshals v and stores it under key with Write semantics.
func (s *Store) WriteJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("store marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	s.Write(key, data)
}

// Remove deletes a key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) {
	if !s.Enabled() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Warn("store remove failed", zap.String("key", key), zap.Error(err))
	}
}
