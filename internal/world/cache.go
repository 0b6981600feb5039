// Package world generates the tiles of the infinite plane and caches them for
// the lifetime of a Cache.
package world

import "time"

// Cache lazily generates tiles and keeps them forever. It owns the global
// point counter, so identities are unique per Cache, not per process.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	cfg   Config
	tiles map[Coord]*Tile
	next  uint64

	// OnGenerate, when set, is called after each new tile is generated.
	OnGenerate func(t *Tile, elapsed time.Duration)
}

// NewCache creates an empty cache. Invalid config fields fall back to defaults.
func NewCache(cfg Config) *Cache {
	return &Cache{cfg: cfg.normalized(), tiles: make(map[Coord]*Tile)}
}

// GetOrCreate returns the tile for c, generating and caching it on first
// access.
func (c *Cache) GetOrCreate(coord Coord) *Tile {
	if t, ok := c.tiles[coord]; ok {
		return t
	}
	start := time.Now()
	t, next := generateTile(coord, c.cfg, c.next)
	c.next = next
	c.tiles[coord] = t
	if c.OnGenerate != nil {
		c.OnGenerate(t, time.Since(start))
	}
	return t
}

// Lookup returns a cached tile without generating it.
func (c *Cache) Lookup(coord Coord) (*Tile, bool) {
	t, ok := c.tiles[coord]
	return t, ok
}

// Len returns the number of cached tiles.
func (c *Cache) Len() int { return len(c.tiles) }

// NextID returns the identity the next generated point will receive.
func (c *Cache) NextID() uint64 { return c.next }

// Config returns the effective configuration.
func (c *Cache) Config() Config { return c.cfg }
