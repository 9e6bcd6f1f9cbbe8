// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(ttl time.Duration, max int) (*queryCache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := newQueryCache(ttl, max)
	c.now = clock.now
	return c, clock
}

func TestCache_MissThenHit(t *testing.T) {
	c, clock := newTestCache(time.Minute, 10)

	if _, ok := c.get("q"); ok {
		t.Fatal("empty cache must miss")
	}
	c.put("q", []string{"doc-1"})

	clock.advance(time.Second)
	ids, ok := c.get("q")
	if !ok {
		t.Fatal("expected hit within TTL")
	}
	if !reflect.DeepEqual(ids, []string{"doc-1"}) {
		t.Errorf("ids = %v", ids)
	}
}

func TestCache_StaleAfterTTL(t *testing.T) {
	c, clock := newTestCache(time.Minute, 10)

	c.get("q")
	c.put("q", []string{"doc-1"})

	clock.advance(time.Minute + time.Second)
	if _, ok := c.get("q"); ok {
		t.Fatal("entry past TTL must not be returned")
	}

	// The recompute repopulates and the key works again.
	c.put("q", []string{"doc-2"})
	clock.advance(time.Second)
	ids, ok := c.get("q")
	if !ok || ids[0] != "doc-2" {
		t.Fatalf("repopulated entry should hit, got %v %v", ids, ok)
	}
}

func TestCache_GlobalClockKeepsOldEntriesAlive(t *testing.T) {
	// Staleness is measured from the most recent search across all
	// queries, so steady unrelated traffic keeps an old entry warm.
	c, clock := newTestCache(time.Minute, 10)

	c.get("a")
	c.put("a", []string{"doc-1"})

	for i := 0; i < 5; i++ {
		clock.advance(30 * time.Second)
		c.get(fmt.Sprintf("other-%d", i))
	}

	clock.advance(30 * time.Second)
	if _, ok := c.get("a"); !ok {
		t.Fatal("entry should still hit while the global clock stays fresh")
	}
}

func TestCache_InsertionOrderEviction(t *testing.T) {
	c, clock := newTestCache(time.Minute, 2)

	c.get("warm")
	c.put("a", []string{"1"})
	c.put("b", []string{"2"})

	// Re-putting an existing key keeps its original slot.
	c.put("a", []string{"1b"})
	c.put("c", []string{"3"})

	clock.advance(time.Second)
	if _, ok := c.get("a"); ok {
		t.Error("oldest-inserted key should have been evicted")
	}
	if _, ok := c.get("b"); !ok {
		t.Error("second-inserted key should survive")
	}
	if _, ok := c.get("c"); !ok {
		t.Error("newest key should survive")
	}
	if c.len() != 2 {
		t.Errorf("cache holds %d entries, want 2", c.len())
	}
}

func TestCache_ClearDropsEverything(t *testing.T) {
	c, clock := newTestCache(time.Minute, 10)
	c.get("q")
	c.put("q", []string{"doc-1"})
	c.clear()

	clock.advance(time.Second)
	if _, ok := c.get("q"); ok {
		t.Fatal("cleared cache must miss")
	}
	if c.len() != 0 {
		t.Errorf("len = %d after clear", c.len())
	}
}
