package cache

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// MemoryStore is a simple in-memory Store with expiration, used when no
// Redis address is configured and as a test double.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
}

type memoryItem struct {
	value      string
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// Set stores a key-value pair with expiration
func (ms *MemoryStore) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	item := &memoryItem{value: value}
	if expiration > 0 {
		item.expireTime = time.Now().Add(expiration)
	}
	ms.items[key] = item
	return nil
}

// Get retrieves a value by key
func (ms *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[key]
	if !exists {
		return "", false, nil
	}

	// Check if expired
	if !item.expireTime.IsZero() && time.Now().After(item.expireTime) {
		return "", false, nil
	}

	return item.value, true, nil
}

// Delete removes a key
func (ms *MemoryStore) Delete(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
	return nil
}

// Incr increments the counter stored at key
func (ms *MemoryStore) Incr(_ context.Context, key string) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	var current int64
	if item, exists := ms.items[key]; exists {
		if item.expireTime.IsZero() || time.Now().Before(item.expireTime) {
			current, _ = strconv.ParseInt(item.value, 10, 64)
		}
	}
	current++
	ms.items[key] = &memoryItem{value: strconv.FormatInt(current, 10)}
	return current, nil
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if !item.expireTime.IsZero() && now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}

var _ Store = (*MemoryStore)(nil)
