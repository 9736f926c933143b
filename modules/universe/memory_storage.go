package universe

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage is an in-memory Storage for tests and development.
type MemoryStorage struct {
	mu        sync.RWMutex
	universes map[uuid.UUID]Universe
}

// NewMemoryStorage creates an empty in-memory universe storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{universes: make(map[uuid.UUID]Universe)}
}

func (s *MemoryStorage) Create(ctx context.Context, u Universe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.universes[u.ID]; ok {
		return ErrUniverseExists
	}
	s.universes[u.ID] = u
	return nil
}

func (s *MemoryStorage) Get(ctx context.Context, id uuid.UUID) (Universe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.universes[id]
	if !ok {
		return Universe{}, ErrUniverseNotFound
	}
	return u, nil
}

func (s *MemoryStorage) List(ctx context.Context) ([]Universe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Universe, 0, len(s.universes))
	for _, u := range s.universes {
		list = append(list, u)
	}
	return list, nil
}

func (s *MemoryStorage) Update(ctx context.Context, u Universe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.universes[u.ID]; !ok {
		return ErrUniverseNotFound
	}
	s.universes[u.ID] = u
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.universes[id]; !ok {
		return ErrUniverseNotFound
	}
	delete(s.universes, id)
	return nil
}
