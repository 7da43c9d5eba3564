package board

import (
	"fmt"
	"sort"
	"sync"

	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/tile"
)

// Board maps hex coordinates to the currently placed tile. A Hex is "on
// the map" iff it is present in the mapping at all (spec.md §3); a cell
// with no tile placed yet holds the blank sentinel instead of being
// absent.
//
// Concurrency: a single sync.RWMutex guards the cell map, mirroring
// core.Graph's per-concern locking. A solve reads the board throughout
// without holding the lock across the whole operation; callers follow
// the single-writer discipline spec.md §5 requires (no mutation
// in-flight during a solve).
type Board struct {
	mu    sync.RWMutex
	cells map[hexcoord.Hex]*tile.Tile
}

// New builds a Board whose cells are exactly hexes, each initialized to
// an independent instantiation of blank (the sentinel "0" tile).
func New(hexes []hexcoord.Hex, blank *tile.Tile) *Board {
	cells := make(map[hexcoord.Hex]*tile.Tile, len(hexes))
	for _, h := range hexes {
		cells[h] = blank.Instantiate()
	}
	return &Board{cells: cells}
}

// Has reports whether h is a playable hex on this board.
func (b *Board) Has(h hexcoord.Hex) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.cells[h]
	return ok
}

// TileAt returns the tile currently placed at h.
func (b *Board) TileAt(h hexcoord.Hex) (*tile.Tile, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.cells[h]
	if !ok {
		return nil, railerr.NotFound(fmt.Sprintf("board: hex %v is not on the map", h))
	}
	return t, nil
}

// SetTile replaces the tile at h. The caller (the rules package) is
// responsible for validating the placement beforehand; SetTile itself
// only enforces that h is a hex this board actually has.
func (b *Board) SetTile(h hexcoord.Hex, t *tile.Tile) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.cells[h]; !ok {
		return railerr.NotFound(fmt.Sprintf("board: hex %v is not on the map", h))
	}
	b.cells[h] = t
	return nil
}

// SegmentAt resolves the segment at (h, slot).
func (b *Board) SegmentAt(h hexcoord.Hex, slot tile.SettlementSlot) (tile.Segment, error) {
	t, err := b.TileAt(h)
	if err != nil {
		return tile.Segment{}, err
	}
	return t.SegmentAt(slot)
}

// SettlementAt resolves the settlement anchored at (h, slot), failing
// NotFound if the segment there carries no settlement.
func (b *Board) SettlementAt(h hexcoord.Hex, slot tile.SettlementSlot) (tile.Settlement, error) {
	seg, err := b.SegmentAt(h, slot)
	if err != nil {
		return nil, err
	}
	if !seg.HasSettlement() {
		return nil, railerr.NotFound(fmt.Sprintf("board: no settlement at %v slot %v", h, slot))
	}
	return seg.Settlement, nil
}

// Hexes returns every playable hex, sorted by its string form for
// deterministic iteration.
func (b *Board) Hexes() []hexcoord.Hex {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]hexcoord.Hex, 0, len(b.cells))
	for h := range b.cells {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Each calls fn for every (hex, tile) pair, in the deterministic order
// Hexes produces.
func (b *Board) Each(fn func(hexcoord.Hex, *tile.Tile)) {
	for _, h := range b.Hexes() {
		t, err := b.TileAt(h)
		if err != nil {
			railerr.Internal("board: hex vanished between Hexes() and TileAt()")
		}
		fn(h, t)
	}
}
