// Package storage provides the key-value persistence port backing the
// bookmark store, with a SQLite implementation for the app and an
// in-memory one for tests.
package storage

// KV is a flat string key-value store. Get returns the empty string for
// absent keys; callers that persist structured data treat an empty or
// undecodable value as "nothing stored".
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Memory is a map-backed KV for tests.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	return m.values[key], nil
}

func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.values, key)
	return nil
}
