package storage

import (
	"net/url"
	"strings"

	"cadence/internal/storage/postgres"
)

// PostgresStore wraps postgres.Store behind the Provider interface.
type PostgresStore struct {
	store *postgres.Store
}

// NewPostgresStore creates a new Postgres-backed store.
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		store: postgres.New(connStr),
	}
}

func (s *PostgresStore) Init() error { return s.store.Init() }

func (s *PostgresStore) Load() error { return s.store.Load() }

func (s *PostgresStore) Close() error { return s.store.Close() }

func (s *PostgresStore) Get(key string) (string, bool, error) { return s.store.Get(key) }

func (s *PostgresStore) Set(key, value string) error { return s.store.Set(key, value) }

func (s *PostgresStore) Delete(key string) error { return s.store.Delete(key) }

func (s *PostgresStore) Keys() ([]string, error) { return s.store.Keys() }

func (s *PostgresStore) GetConfigPath() string { return s.store.GetConfigPath() }

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password, either in URL userinfo or as a DSN password field.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, isSet := u.User.Password(); isSet {
				return true
			}
		}
		return false
	}

	for _, pair := range strings.Fields(connStr) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[0]), "password") {
			return true
		}
	}
	return false
}
