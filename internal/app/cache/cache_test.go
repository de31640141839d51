package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute, 10)

	c.Set("key", 42)
	v, ok := c.Get("key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if v.(int) != 42 {
		t.Errorf("expected 42, got %v", v)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected cache miss")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(10*time.Millisecond, 10)

	c.Set("key", "value")
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCacheEviction(t *testing.T) {
	c := New(time.Minute, 2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3) // вытесняет самый старый

	if _, ok := c.Get("a"); ok {
		t.Error("expected oldest entry evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected b to survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected c to survive")
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New(time.Minute, 10)

	c.Set("a", 1)
	if !c.Delete("a") {
		t.Error("expected delete to report removal")
	}
	if c.Delete("a") {
		t.Error("expected second delete to be a no-op")
	}

	c.Set("b", 2)
	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("expected cleared cache to miss")
	}
}

func TestCacheStats(t *testing.T) {
	c := New(time.Minute, 10)

	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	hits, misses := c.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("expected 2 hits / 1 miss, got %d/%d", hits, misses)
	}
}
