// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"sync"
	"time"
)

// queryCache maps a query fingerprint to an ordered document id list.
//
// Staleness is judged against a single shared last-search timestamp rather
// than each entry's own age: a hit counts only when the previous search,
// whichever query it was, happened within the TTL window. Per-entry creation
// times are recorded but do not drive expiry. Eviction on overflow removes
// the oldest-inserted key. Entries are never swept in the background;
// staleness is detected lazily at read time.
type queryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]cacheEntry
	order      []string
	lastSearch time.Time

	now func() time.Time // stubbed in tests
}

type cacheEntry struct {
	ids       []string
	createdAt time.Time
}

func newQueryCache(ttl time.Duration, maxEntries int) *queryCache {
	return &queryCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]cacheEntry),
		now:        time.Now,
	}
}

// get looks up a fingerprint and advances the shared search clock. The
// staleness check uses the clock value prior to this call.
func (c *queryCache) get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fresh := !c.lastSearch.IsZero() && c.now().Sub(c.lastSearch) <= c.ttl
	c.lastSearch = c.now()

	if !fresh {
		return nil, false
	}
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return entry.ids, true
}

// put stores a recomputed result. An existing key keeps its insertion-order
// slot; a new key may evict the oldest-inserted entry.
func (c *queryCache) put(key string, ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
		if len(c.order) > c.maxEntries {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
	}
	c.entries[key] = cacheEntry{ids: ids, createdAt: c.now()}
}

// clear drops every entry. Ingestion calls this so cached result lists never
// outlive a change to the document set.
func (c *queryCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	c.order = nil
}

func (c *queryCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
