package session

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory MembershipStore for tests and development.
type MemoryStore struct {
	mu          sync.RWMutex
	memberships map[uuid.UUID][]Membership
}

// NewMemoryStore creates an empty in-memory membership store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		memberships: make(map[uuid.UUID][]Membership),
	}
}

// Add inserts or replaces the user's membership in the universe.
func (m *MemoryStore) Add(membership Membership) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.memberships[membership.UserID]
	for i, existing := range list {
		if existing.UniverseID == membership.UniverseID {
			list[i] = membership
			return
		}
	}
	m.memberships[membership.UserID] = append(list, membership)
}

// Remove deletes the user's membership in the universe, if present.
func (m *MemoryStore) Remove(userID, universeID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.memberships[userID]
	for i, existing := range list {
		if existing.UniverseID == universeID {
			m.memberships[userID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// ListByUniverse returns every membership in the universe ordered by
// CreatedAt, then UserID.
func (m *MemoryStore) ListByUniverse(ctx context.Context, universeID uuid.UUID) ([]Membership, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []Membership
	for _, list := range m.memberships {
		for _, membership := range list {
			if membership.UniverseID == universeID {
				result = append(result, membership)
			}
		}
	}

	slices.SortFunc(result, func(a, b Membership) int {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if a.CreatedAt.Before(b.CreatedAt) {
				return -1
			}
			return 1
		}
		return bytes.Compare(a.UserID[:], b.UserID[:])
	})

	return result, nil
}

// Upsert inserts or replaces the user's membership in the universe.
func (m *MemoryStore) Upsert(ctx context.Context, membership Membership) error {
	m.Add(membership)
	return nil
}

// Delete removes the user's membership in the universe, if present.
func (m *MemoryStore) Delete(ctx context.Context, userID, universeID uuid.UUID) error {
	m.Remove(userID, universeID)
	return nil
}

// FindRole returns the role of the user's membership in the universe.
func (m *MemoryStore) FindRole(ctx context.Context, userID, universeID uuid.UUID) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, membership := range m.memberships[userID] {
		if membership.UniverseID == universeID {
			return membership.Role, nil
		}
	}
	return "", ErrMembershipNotFound
}

// ListByUser returns the user's memberships ordered by CreatedAt, then
// UniverseID.
func (m *MemoryStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]Membership, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := m.memberships[userID]
	result := make([]Membership, len(list))
	copy(result, list)

	slices.SortFunc(result, func(a, b Membership) int {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if a.CreatedAt.Before(b.CreatedAt) {
				return -1
			}
			return 1
		}
		return bytes.Compare(a.UniverseID[:], b.UniverseID[:])
	})

	return result, nil
}
