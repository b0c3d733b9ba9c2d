package storage

import "sync"

// MemoryKV implements the KV interface with an in-process map.
//
// It backs unit tests and sessions that run without a database file.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string][]byte

	// PutErr, when set, is returned by every Put. Tests use it to
	// exercise degraded-persistence paths.
	PutErr error
}

// NewMemoryKV creates an empty in-memory key-value store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

// Get retrieves the value stored under key.
func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

// Put stores value under key, replacing any previous value.
func (m *MemoryKV) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PutErr != nil {
		return m.PutErr
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	m.values[key] = cp
	return nil
}

// Close releases the store. It is a no-op for the in-memory implementation.
func (m *MemoryKV) Close() error {
	return nil
}
