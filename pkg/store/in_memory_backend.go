package store

import (
	"sync"

	errUtils "github.com/cloudmesh/yamldb/errors"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

// InMemoryBackend holds the document snapshot in process memory.
// Load and Save deep-copy, so callers never alias the stored snapshot.
type InMemoryBackend struct {
	mu     sync.RWMutex
	data   map[string]any
	stored bool
	closed bool
}

// Ensure InMemoryBackend implements the Backend interface.
var _ Backend = (*InMemoryBackend)(nil)

// NewInMemoryBackend initializes a new InMemoryBackend.
func NewInMemoryBackend(_ Options) (Backend, error) {
	return &InMemoryBackend{}, nil
}

func (m *InMemoryBackend) Load() (map[string]any, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, false, errUtils.ErrBackendClosed
	}
	if !m.stored {
		return nil, false, nil
	}
	data, err := u.DeepCopyMap(m.data)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (m *InMemoryBackend) Save(data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errUtils.ErrBackendClosed
	}
	snapshot, err := u.DeepCopyMap(data)
	if err != nil {
		return err
	}
	m.data = snapshot
	m.stored = true
	return nil
}

func (m *InMemoryBackend) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errUtils.ErrBackendClosed
	}
	m.data = nil
	m.stored = false
	return nil
}

func (m *InMemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *InMemoryBackend) Name() string {
	return BackendMemory
}
