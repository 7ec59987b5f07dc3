package replaycache

import (
	"container/list"
	"context"
	"sync"
)

type entry struct {
	identity  string
	expiresAt uint64
}

// MemoryStore is the in-process replay store. It keeps one entry per
// identity in two coupled structures over the same entries: a lookup
// map keyed by identity bytes and an expiry-ordered list with the
// stalest entry at the front. Expiry values only grow as windows
// advance, so appending and moving to the back keeps the list sorted
// without re-sorting. Both structures are mutated together under a
// single lock.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List
	closed  bool
}

// NewMemoryStore creates an empty in-process replay store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Update implements Store. The whole cleanup, lookup and insert/move
// sequence runs under one critical section so concurrent updates
// observe a total order.
func (ms *MemoryStore) Update(ctx context.Context, identityKey []byte, windowStart, step uint64) error {
	if len(identityKey) == 0 {
		return ErrEmptyIdentityKey
	}
	if step == 0 {
		return ErrInvalidTimeStep
	}

	cutoff, expiresAt := WindowExpiry(windowStart, step)

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.closed {
		return ErrStoreClosed
	}

	ms.evictExpired(cutoff)

	key := string(identityKey)
	if elem, ok := ms.entries[key]; ok {
		elem.Value.(*entry).expiresAt = expiresAt
		ms.order.MoveToBack(elem)
		return nil
	}

	ms.entries[key] = ms.order.PushBack(&entry{identity: key, expiresAt: expiresAt})
	return nil
}

// Len reports the number of live entries.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.order.Len()
}

// Close releases all entries. Safe to call multiple times.
func (ms *MemoryStore) Close() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.closed = true
	ms.entries = make(map[string]*list.Element)
	ms.order.Init()
	return nil
}

// Must be called with lock held. Pops entries from the stalest end
// while their expiry precedes the cutoff.
func (ms *MemoryStore) evictExpired(cutoff uint64) {
	for elem := ms.order.Front(); elem != nil; {
		e := elem.Value.(*entry)
		if e.expiresAt >= cutoff {
			return
		}
		next := elem.Next()
		ms.order.Remove(elem)
		delete(ms.entries, e.identity)
		elem = next
	}
}
