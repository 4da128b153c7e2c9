package persist

import (
	"context"
	"sync"
)

// MemoryStore keeps layouts in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	layouts map[string]SavedLayouts
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{layouts: make(map[string]SavedLayouts)}
}

func (m *MemoryStore) Load(_ context.Context, autoSaveID string) (SavedLayouts, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneLayouts(m.layouts[autoSaveID]), nil
}

func (m *MemoryStore) Save(_ context.Context, autoSaveID string, layouts SavedLayouts) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layouts[autoSaveID] = cloneLayouts(layouts)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, autoSaveID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.layouts, autoSaveID)
	return nil
}

func cloneLayouts(in SavedLayouts) SavedLayouts {
	out := make(SavedLayouts, len(in))
	for k, v := range in {
		sizes := make([]float64, len(v))
		copy(sizes, v)
		out[k] = sizes
	}
	return out
}
