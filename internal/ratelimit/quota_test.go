package ratelimit

import (
	"sync"
	"testing"
)

func TestRemainingInitializesToLimit(t *testing.T) {
	store := NewMemoryStore(5)

	if got := store.Remaining("sess-1", "biz-1"); got != 5 {
		t.Fatalf("expected 5 remaining for unseen pair, got %d", got)
	}
}

func TestDecrementCountsDown(t *testing.T) {
	store := NewMemoryStore(3)

	store.Decrement("sess-1", "biz-1")
	if got := store.Remaining("sess-1", "biz-1"); got != 2 {
		t.Fatalf("expected 2 after one decrement, got %d", got)
	}

	store.Decrement("sess-1", "biz-1")
	store.Decrement("sess-1", "biz-1")
	if got := store.Remaining("sess-1", "biz-1"); got != 0 {
		t.Fatalf("expected 0 after exhausting allowance, got %d", got)
	}
}

func TestDecrementFloorsAtZero(t *testing.T) {
	store := NewMemoryStore(1)

	store.Decrement("sess-1", "biz-1")
	store.Decrement("sess-1", "biz-1")
	store.Decrement("sess-1", "biz-1")

	if got := store.Remaining("sess-1", "biz-1"); got != 0 {
		t.Fatalf("remaining went below zero: %d", got)
	}
}

func TestPairsAreIndependent(t *testing.T) {
	store := NewMemoryStore(2)

	store.Decrement("sess-1", "biz-1")

	if got := store.Remaining("sess-1", "biz-2"); got != 2 {
		t.Fatalf("other business drained: %d", got)
	}
	if got := store.Remaining("sess-2", "biz-1"); got != 2 {
		t.Fatalf("other session drained: %d", got)
	}
}

func TestConcurrentDecrements(t *testing.T) {
	store := NewMemoryStore(100)

	var wg sync.WaitGroup
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Decrement("sess-1", "biz-1")
		}()
	}
	wg.Wait()

	if got := store.Remaining("sess-1", "biz-1"); got != 40 {
		t.Fatalf("expected 40 after 60 concurrent decrements, got %d", got)
	}
}
