package cache

import (
	"testing"
	"time"
)

func TestLRUGetSet(t *testing.T) {
	c := NewLRUCache[string](2, time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected miss on empty cache")
	}
	c.Set("a", "1")
	if v, ok := c.Get("a"); !ok || v != "1" {
		t.Fatalf("got %q/%v, want 1/true", v, ok)
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a is now most recently used
	c.Set("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected b evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a retained")
	}
	if c.Size() != 2 {
		t.Fatalf("size = %d, want 2", c.Size())
	}
}

func TestLRUExpiry(t *testing.T) {
	c := NewLRUCache[int](10, time.Nanosecond)
	c.Set("a", 1)
	time.Sleep(time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestLRUZeroTTLNeverExpires(t *testing.T) {
	c := NewLRUCache[int](10, 0)
	c.Set("a", 1)
	time.Sleep(time.Millisecond)
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("zero-TTL entry must not expire")
	}
	if n := c.CleanExpired(); n != 0 {
		t.Fatalf("CleanExpired removed %d entries from zero-TTL cache", n)
	}
}

func TestCleanExpired(t *testing.T) {
	c := NewLRUCache[int](10, time.Nanosecond)
	c.Set("a", 1)
	c.Set("b", 2)
	time.Sleep(time.Millisecond)
	if n := c.CleanExpired(); n != 2 {
		t.Fatalf("cleaned %d, want 2", n)
	}
	if c.Size() != 0 {
		t.Fatalf("size = %d, want 0", c.Size())
	}
}

func TestLRUDelete(t *testing.T) {
	c := NewLRUCache[int](10, time.Minute)
	c.Set("a", 1)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected deleted key to miss")
	}
	c.Delete("missing") // no-op
}
