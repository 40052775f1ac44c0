package storage

import (
	"database/sql"

	"cadence/internal/storage/sqlite"
)

// SQLiteStore wraps sqlite.Store behind the Provider interface.
type SQLiteStore struct {
	store *sqlite.Store
	db    *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed store.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		store: sqlite.NewStore(path),
	}
}

func (s *SQLiteStore) Init() error {
	err := s.store.Init()
	if err == nil {
		s.db = s.store.GetDB()
	}
	return err
}

func (s *SQLiteStore) Load() error {
	err := s.store.Load()
	if err == nil {
		s.db = s.store.GetDB()
	}
	return err
}

func (s *SQLiteStore) Close() error { return s.store.Close() }

func (s *SQLiteStore) Get(key string) (string, bool, error) { return s.store.Get(key) }

func (s *SQLiteStore) Set(key, value string) error { return s.store.Set(key, value) }

func (s *SQLiteStore) Delete(key string) error { return s.store.Delete(key) }

func (s *SQLiteStore) Keys() ([]string, error) { return s.store.Keys() }

func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }
