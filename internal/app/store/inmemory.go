package store

import (
	"context"
	"sync"

	"github.com/aseptimu/shortlink/internal/app/service"
)

// InMemoryStore keeps mappings in process memory. Upsert is atomic under mu.
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
	rev  map[string]string
}

func NewStore() *InMemoryStore {
	return &InMemoryStore{
		data: make(map[string]string),
		rev:  make(map[string]string),
	}
}

func (m *InMemoryStore) CountByID(_ context.Context, id string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.data[id]; ok {
		return 1, nil
	}
	return 0, nil
}

func (m *InMemoryStore) Upsert(_ context.Context, id, url string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, found := m.rev[url]; found {
		return existing, nil
	}
	if _, taken := m.data[id]; taken {
		return "", service.ErrIDTaken
	}

	m.data[id] = url
	m.rev[url] = id
	return id, nil
}

func (m *InMemoryStore) Get(_ context.Context, id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	url, ok := m.data[id]
	if !ok {
		return "", service.ErrURLNotFound
	}
	return url, nil
}

// Len returns the number of stored mappings.
func (m *InMemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
