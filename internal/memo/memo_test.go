package memo

import (
	"sync"
	"testing"
)

func TestStoreGet(t *testing.T) {
	store := New[string, int]()

	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	// First call computes
	if got := store.Get("a", compute); got != 42 {
		t.Errorf("Expected 42, got %d", got)
	}
	// Second call is cached
	if got := store.Get("a", compute); got != 42 {
		t.Errorf("Expected 42 from cache, got %d", got)
	}
	if calls != 1 {
		t.Errorf("Expected compute to run once, ran %d times", calls)
	}

	hits, misses := store.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Expected 1 hit and 1 miss, got %d hits and %d misses", hits, misses)
	}
}

func TestStoreLookup(t *testing.T) {
	store := New[int, string]()

	if _, ok := store.Lookup(7); ok {
		t.Error("Lookup on empty store should miss")
	}

	store.Get(7, func() string { return "seven" })

	v, ok := store.Lookup(7)
	if !ok || v != "seven" {
		t.Errorf("Expected seven, got %q (ok=%v)", v, ok)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", store.Len())
	}
}

func TestStoreClear(t *testing.T) {
	store := New[string, int]()
	store.Get("a", func() int { return 1 })
	store.Get("a", func() int { return 1 })

	store.Clear()

	if store.Len() != 0 {
		t.Errorf("Expected 0 entries after clear, got %d", store.Len())
	}
	hits, misses := store.Stats()
	if hits != 0 || misses != 0 {
		t.Errorf("Expected counters reset, got %d hits and %d misses", hits, misses)
	}

	// Recomputes after clear
	if got := store.Get("a", func() int { return 2 }); got != 2 {
		t.Errorf("Expected 2 after clear, got %d", got)
	}
}

func TestStoreConcurrentGet(t *testing.T) {
	store := New[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := i % 5
			if got := store.Get(key, func() int { return key * key }); got != key*key {
				t.Errorf("key %d: expected %d, got %d", key, key*key, got)
			}
		}(i)
	}
	wg.Wait()

	if store.Len() != 5 {
		t.Errorf("Expected 5 entries, got %d", store.Len())
	}
}
