package store

import (
	"github.com/viant/crm/internal/collection"
)

const (
	// AccessTokenKey holds the bearer credential issued at login.
	AccessTokenKey = "access_token"
	// ViewModeKey holds the preferred listing view (table or cards).
	ViewModeKey = "viewMode"
	// ThemeKey holds the preferred theme.
	ThemeKey = "theme"
	// DensityKey holds the preferred layout density.
	DensityKey = "density"
)

// Store is the durable key-value boundary.
// Delete of an absent key must be a no-op.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// HasToken reports whether a non-empty credential is present.
func HasToken(s Store) bool {
	if s == nil {
		return false
	}
	token, ok := s.Get(AccessTokenKey)
	return ok && token != ""
}

// Token returns the stored credential or an empty string.
func Token(s Store) string {
	if s == nil {
		return ""
	}
	token, _ := s.Get(AccessTokenKey)
	return token
}

type MemoryStoreOption func(*memoryStore)

// WithValue seeds the memory store with key/value.
func WithValue(key, value string) MemoryStoreOption {
	return func(m *memoryStore) {
		m.values.Put(key, value)
	}
}

// WithToken seeds the memory store with a credential.
func WithToken(token string) MemoryStoreOption {
	return WithValue(AccessTokenKey, token)
}

type memoryStore struct {
	values *collection.SyncMap[string, string]
}

func (m *memoryStore) Get(key string) (string, bool) {
	return m.values.Get(key)
}

func (m *memoryStore) Set(key, value string) error {
	m.values.Put(key, value)
	return nil
}

func (m *memoryStore) Delete(key string) error {
	m.values.Delete(key)
	return nil
}

// NewMemoryStore returns a process-local store.
func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{values: collection.NewSyncMap[string, string]()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
