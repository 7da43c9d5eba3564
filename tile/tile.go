package tile

import (
	"sort"

	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/railerr"
)

// Tile is an immutable track-layout template: a color, a set of
// segments, and the upgrade lineage it belongs to (spec.md §3/§4.2).
// A Tile fresh out of the catalog is shared read-only reference data;
// Instantiate produces the independent, board-placeable copy a station
// mutation can safely write into.
type Tile struct {
	ID       string
	Colors   Color // usually a single color; combined sets name upgrade ceilings
	Label    string
	Segments []Segment
	// Upgrades lists the tile IDs this tile may be replaced by.
	Upgrades []string
}

// BlankID is the sentinel tile id for an unplaced hex (spec.md §3:
// "Blank hexes use the sentinel '0' tile (empty, BLANK, upgrades into
// basic yellows)").
const BlankID = "0"

// NewBlankTemplate returns the sentinel blank-tile template: no
// segments, BLANK color, upgradeable into the given yellow tile ids.
// board.New calls Instantiate on the result for every playable hex.
func NewBlankTemplate(upgradesInto ...string) *Tile {
	return &Tile{ID: BlankID, Colors: Blank, Upgrades: append([]string(nil), upgradesInto...)}
}

// Rotated returns a copy of t with every segment rotated clockwise by k
// steps (spec.md §3). Rotation never mutates t, and it does not give
// City segments a fresh station list — use Instantiate for that.
func (t *Tile) Rotated(k int) *Tile {
	out := &Tile{ID: t.ID, Colors: t.Colors, Label: t.Label, Upgrades: t.Upgrades}
	out.Segments = make([]Segment, len(t.Segments))
	for i, seg := range t.Segments {
		out.Segments[i] = seg.Rotated(k)
	}
	return out
}

// Instantiate returns a copy of t suitable for placement on the board:
// every City settlement is replaced by a fresh *City with an empty
// station list, so that two cells holding the same catalog tile id never
// share station state (spec.md §9's "City as a handle into an owning
// arena" — here each placement gets its own arena slot). Town and
// Offboard settlements are immutable values and are carried over as-is.
func (t *Tile) Instantiate() *Tile {
	out := &Tile{ID: t.ID, Colors: t.Colors, Label: t.Label, Upgrades: t.Upgrades}
	out.Segments = make([]Segment, len(t.Segments))
	for i, seg := range t.Segments {
		fresh := seg
		if city, ok := seg.Settlement.(*City); ok {
			fresh.Settlement = &City{Value: city.Value, Capacity: city.Capacity}
		}
		out.Segments[i] = fresh
	}
	return out
}

// SegmentAt returns the segment serving slot, if any.
func (t *Tile) SegmentAt(slot SettlementSlot) (Segment, error) {
	for _, seg := range t.Segments {
		if seg.HasSettlement() && seg.Slot == slot {
			return seg, nil
		}
	}
	return Segment{}, railerr.NotFound("tile: no segment at requested settlement slot")
}

// SegmentsWithExit returns every segment reaching edge direction dir, in
// a stable Segment-slice order (tiles rarely have more than one, but
// double-track tiles and shared-edge tiles can).
func (t *Tile) SegmentsWithExit(dir hexcoord.Direction) []Segment {
	var out []Segment
	for _, seg := range t.Segments {
		if seg.HasExit(dir) {
			out = append(out, seg)
		}
	}
	return out
}

// IsUpgrade reports whether t is a legal upgrade of other: otherID must
// appear in t's declared predecessor set. Upgrade legality is recorded
// on the successor tile by convention in this catalog, mirroring
// original_source/core/tile.py's tile_manifest adjacency list, inverted
// so each tile lists what it upgrades FROM.
func (t *Tile) IsUpgrade(otherID string) bool {
	for _, id := range t.Upgrades {
		if id == otherID {
			return true
		}
	}
	return false
}

// HasStation reports whether any of t's City segments already hosts
// railwayID.
func (t *Tile) HasStation(railwayID string) bool {
	for _, seg := range t.Segments {
		if city, ok := seg.Settlement.(*City); ok && city.HasStation(railwayID) {
			return true
		}
	}
	return false
}

// GetStationSlot returns the settlement slot holding railwayID's
// station, if t currently has one.
func (t *Tile) GetStationSlot(railwayID string) (SettlementSlot, error) {
	for _, seg := range t.Segments {
		if city, ok := seg.Settlement.(*City); ok && city.HasStation(railwayID) {
			return seg.Slot, nil
		}
	}
	return 0, railerr.NotFound("tile: railway has no station on this tile")
}

// GoesOutsideMap reports whether t, placed at hex h, reaches a
// neighboring hex that boardHas reports as outside the playable board
// (spec.md §4.2's "track may not dangle off the printed map"). boardHas
// is supplied by the caller (the board package) rather than a concrete
// board type, so the tile model never depends on board and stays free of
// an import cycle with the package that depends on it.
func GoesOutsideMap(t *Tile, h hexcoord.Hex, boardHas func(hexcoord.Hex) bool) bool {
	for _, seg := range t.Segments {
		for _, dir := range seg.ExitSet() {
			if !boardHas(h.Neighbor(dir)) {
				return true
			}
		}
	}
	return false
}

// SortedUpgrades returns t.Upgrades in a deterministic, sorted order;
// useful for tests and for deterministic UI listing.
func (t *Tile) SortedUpgrades() []string {
	out := append([]string(nil), t.Upgrades...)
	sort.Strings(out)
	return out
}
