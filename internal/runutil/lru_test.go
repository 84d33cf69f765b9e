package runutil

import "testing"

func TestLRUEvictsLeastRecent(t *testing.T) {
	c := NewLRU[string, int](2)
	if c.Add("a", 1) || c.Add("b", 2) {
		t.Fatalf("no eviction expected below capacity")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("want a=1, got %d ok=%v", v, ok)
	}
	// "b" is now least recently used
	if !c.Add("c", 3) {
		t.Fatalf("expected eviction at capacity")
	}
	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have been evicted")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatalf("want c=3, got %d ok=%v", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("want len 2, got %d", c.Len())
	}
}

func TestLRUUpdateInPlace(t *testing.T) {
	c := NewLRU[int, string](1)
	c.Add(1, "x")
	if c.Add(1, "y") {
		t.Fatalf("updating an existing key must not evict")
	}
	if v, _ := c.Get(1); v != "y" {
		t.Fatalf("want y, got %q", v)
	}
}

func TestLRUDefaultCapacity(t *testing.T) {
	if got := NewLRU[int, int](0).Cap(); got != DefaultLRUSize {
		t.Fatalf("want %d, got %d", DefaultLRUSize, got)
	}
}
