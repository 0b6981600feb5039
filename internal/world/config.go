package world

import (
	"strconv"
	"strings"

	"tileplane/internal/geom"
)

// Config controls how tiles are generated.
type Config struct {
	TileSize      float64
	PointsPerTile int

	// Seed salts every tile's generator. Tiles are a pure function of their
	// coordinate for a fixed Seed.
	Seed uint64

	Palette string

	Triangulate geom.Triangulator
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		TileSize:      1024,
		PointsPerTile: 160,
		Seed:          0,
		Palette:       PaletteGray,
		Triangulate:   geom.Triangulate,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["tile_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 1 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["points"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.PointsPerTile = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["palette"]; ok {
		name := strings.ToLower(strings.TrimSpace(v))
		if _, known := palettes[name]; known {
			c.Palette = name
		}
	}
	return c
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.TileSize < 1 {
		c.TileSize = d.TileSize
	}
	if c.PointsPerTile < 3 {
		c.PointsPerTile = d.PointsPerTile
	}
	if _, ok := palettes[c.Palette]; !ok {
		c.Palette = d.Palette
	}
	if c.Triangulate == nil {
		c.Triangulate = d.Triangulate
	}
	return c
}
