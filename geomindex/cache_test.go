package geomindex

import (
	"testing"

	"github.com/gogpu/vtile"
)

func TestCacheGetSet(t *testing.T) {
	c := NewCache(10)
	coords := vtile.NewTileCoords(1, 1, 5)
	idx := &Index{Coords: coords, LayerName: "roads"}

	if _, ok := c.Get(coords); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set(coords, idx)
	got, ok := c.Get(coords)
	if !ok || got != idx {
		t.Fatalf("expected to retrieve the stored index, got %+v, %v", got, ok)
	}
}

func TestCacheEvictsOverSoftLimit(t *testing.T) {
	c := NewCache(4)
	for i := 0; i < 10; i++ {
		coords := vtile.NewTileCoords(uint32(i), 0, 0)
		c.Set(coords, &Index{Coords: coords})
	}

	if got := c.Len(); got > 4 {
		t.Fatalf("expected len to stay bounded near the soft limit, got %d", got)
	}

	// The most recently inserted entry must still be resident.
	last := vtile.NewTileCoords(9, 0, 0)
	if _, ok := c.Get(last); !ok {
		t.Fatal("expected the most recently inserted entry to survive eviction")
	}
}

func TestCacheUnlimitedWhenSoftLimitZero(t *testing.T) {
	c := NewCache(0)
	for i := 0; i < 50; i++ {
		coords := vtile.NewTileCoords(uint32(i), 0, 0)
		c.Set(coords, &Index{Coords: coords})
	}
	if got := c.Len(); got != 50 {
		t.Fatalf("expected all 50 entries resident with an unlimited cache, got %d", got)
	}
}
