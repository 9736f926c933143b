package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Cache stores membership role strings keyed by (user, universe). Only the
// membership read is cached; resolved grant sets are never cached here, so a
// role change takes effect as soon as the cache entry expires or is
// invalidated.
type Cache interface {
	// Get retrieves a cached role by key.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a role with the given TTL.
	Set(ctx context.Context, key string, role string, ttl time.Duration)

	// Delete removes a cached role.
	Delete(ctx context.Context, key string)

	// Close releases any resources held by the cache.
	Close() error
}

// CachedStore decorates a MembershipStore with role caching for FindRole.
// ListByUser always goes to the underlying store: it feeds default-universe
// selection, which is rare enough not to warrant staleness.
type CachedStore struct {
	next  MembershipStore
	cache Cache
	ttl   time.Duration
}

// DefaultCacheTTL bounds how long a revoked or changed role can keep serving
// from cache.
const DefaultCacheTTL = time.Minute

// NewCachedStore wraps the store with the cache. A zero or negative ttl
// falls back to DefaultCacheTTL.
func NewCachedStore(next MembershipStore, cache Cache, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{next: next, cache: cache, ttl: ttl}
}

func membershipKey(userID, universeID uuid.UUID) string {
	return fmt.Sprintf("membership:%s:%s", userID, universeID)
}

// FindRole serves from cache when possible. Lookup failures are not cached:
// a missing membership must become visible immediately after the user joins.
func (s *CachedStore) FindRole(ctx context.Context, userID, universeID uuid.UUID) (string, error) {
	key := membershipKey(userID, universeID)
	if role, ok := s.cache.Get(ctx, key); ok {
		return role, nil
	}

	role, err := s.next.FindRole(ctx, userID, universeID)
	if err != nil {
		return "", err
	}

	s.cache.Set(ctx, key, role, s.ttl)
	return role, nil
}

// ListByUser delegates to the underlying store.
func (s *CachedStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]Membership, error) {
	return s.next.ListByUser(ctx, userID)
}

// Invalidate drops the cached role for the user in the universe. Call it
// after a membership change so the next resolution sees fresh data.
func (s *CachedStore) Invalidate(ctx context.Context, userID, universeID uuid.UUID) {
	s.cache.Delete(ctx, membershipKey(userID, universeID))
}

// inMemoryCache is the default Cache implementation with TTL expiry and a
// periodic sweep.
type inMemoryCache struct {
	mu     sync.RWMutex
	items  map[string]cacheItem
	stop   chan struct{}
	done   chan struct{}
	closed bool
}

type cacheItem struct {
	role      string
	expiresAt time.Time
}

// NewInMemoryCache creates an in-memory cache with automatic cleanup.
func NewInMemoryCache() Cache {
	c := &inMemoryCache{
		items: make(map[string]cacheItem),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go c.cleanup()
	return c
}

func (c *inMemoryCache) Get(ctx context.Context, key string) (string, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Now().After(item.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return "", false
	}
	return item.role, true
}

func (c *inMemoryCache) Set(ctx context.Context, key string, role string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{role: role, expiresAt: time.Now().Add(ttl)}
}

func (c *inMemoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *inMemoryCache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	defer close(c.done)

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *inMemoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
		}
	}
}

func (c *inMemoryCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
	return nil
}
