// File: synthetic.go
// Role: deterministic fixture-board constructors for tests, composed
// the way lvlath/builder.BuildGraph composes Constructor closures over a
// shared config (spec.md's out-of-core rendering/geometry aside, this
// is purely a test convenience — no production code depends on it).
package board

import (
	"fmt"

	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/tile"
)

// Builder accumulates (hex, tile) placements before producing a Board.
type Builder struct {
	hexes []hexcoord.Hex
	tiles map[hexcoord.Hex]*tile.Tile
}

// NewBuilder starts an empty Builder.
func NewBuilder() *Builder {
	return &Builder{tiles: make(map[hexcoord.Hex]*tile.Tile)}
}

// Place adds or replaces the tile at h.
func (b *Builder) Place(h hexcoord.Hex, t *tile.Tile) *Builder {
	if _, exists := b.tiles[h]; !exists {
		b.hexes = append(b.hexes, h)
	}
	b.tiles[h] = t
	return b
}

// Build produces the Board: every placed hex holds its given tile.
func (b *Builder) Build() *Board {
	board := New(b.hexes, tile.NewBlankTemplate())
	for _, h := range b.hexes {
		_ = board.SetTile(h, b.tiles[h])
	}
	return board
}

// Constructor applies one deterministic placement step to a Builder, in
// the same compositional style as lvlath/builder.Constructor.
type Constructor func(*Builder)

// Compose runs every Constructor against a fresh Builder and returns the
// resulting Board.
func Compose(cons ...Constructor) *Board {
	b := NewBuilder()
	for _, c := range cons {
		c(b)
	}
	return b.Build()
}

// Line places n City tiles in a straight run starting at start and
// stepping in dir, each with exactly the track exits needed to connect
// to its neighbors (first and last tiles are single-exit termini).
// values supplies each city's revenue by position; homeRailwayID (if
// non-empty) gets a station on position 0.
func Line(start hexcoord.Hex, dir hexcoord.Direction, n int, values func(i int) int, homeRailwayID string) Constructor {
	return func(b *Builder) {
		h := start
		for i := 0; i < n; i++ {
			var exits []hexcoord.Direction
			if i > 0 {
				exits = append(exits, dir.Rotate(3))
			}
			if i < n-1 {
				exits = append(exits, dir)
			}
			city := &tile.City{Value: values(i), Capacity: 1}
			if i == 0 && homeRailwayID != "" {
				city.Stations = []string{homeRailwayID}
			}
			seg := tile.NewSettlementSegment(city, tile.SlotC, exits...)
			b.Place(h, &tile.Tile{ID: fmt.Sprintf("line-%d", i), Colors: tile.Yellow, Segments: []tile.Segment{seg}})
			h = h.Neighbor(dir)
		}
	}
}

// PlainTrack places a settlement-free pass-through tile at h connecting
// exactly the given exits (e.g. a fork point).
func PlainTrack(h hexcoord.Hex, id string, exits ...hexcoord.Direction) Constructor {
	return func(b *Builder) {
		b.Place(h, &tile.Tile{ID: id, Colors: tile.Yellow, Segments: []tile.Segment{tile.NewSegment(exits...)}})
	}
}

// Leaf places a single-exit City tile at h (a terminus off a fork).
func Leaf(h hexcoord.Hex, id string, exit hexcoord.Direction, value int) Constructor {
	return func(b *Builder) {
		seg := tile.NewSettlementSegment(&tile.City{Value: value, Capacity: 1}, tile.SlotC, exit)
		b.Place(h, &tile.Tile{ID: id, Colors: tile.Yellow, Segments: []tile.Segment{seg}})
	}
}
