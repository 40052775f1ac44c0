package storage

// Provider is a key-value blob store holding the persisted aggregates as
// JSON-encoded strings. All writes are synchronous; callers treat a mutation
// plus its Set as one unit.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Blobs
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
