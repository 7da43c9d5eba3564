package tile

import "github.com/railtopo/route18xx/hexcoord"

// Segment is a single piece of track (or a station-only stub) printed on
// a Tile: a set of edge exits plus, optionally, the Settlement it
// anchors and the slot that settlement occupies (spec.md §3). A segment
// with exits and no settlement is a pass-through curve; a segment with a
// settlement and exits is a set of spokes into that settlement.
type Segment struct {
	Exits      map[hexcoord.Direction]bool
	Settlement Settlement
	Slot       SettlementSlot
}

// NewSegment builds a plain track segment connecting the given exits,
// with no settlement.
func NewSegment(exits ...hexcoord.Direction) Segment {
	m := make(map[hexcoord.Direction]bool, len(exits))
	for _, d := range exits {
		m[d] = true
	}
	return Segment{Exits: m}
}

// NewSettlementSegment builds a segment anchoring settlement at slot,
// with the given exits (zero exits is valid for a pure stub, e.g. a lone
// city dot with no printed track).
func NewSettlementSegment(settlement Settlement, slot SettlementSlot, exits ...hexcoord.Direction) Segment {
	s := NewSegment(exits...)
	s.Settlement = settlement
	s.Slot = slot
	return s
}

// HasSettlement reports whether this segment anchors a settlement.
func (s Segment) HasSettlement() bool {
	return s.Settlement != nil
}

// HasExit reports whether this segment reaches edge direction d.
func (s Segment) HasExit(d hexcoord.Direction) bool {
	return s.Exits[d]
}

// ExitSet returns the segment's exits as a slice ordered N..NW, for
// deterministic iteration in route enumeration and upgrade matching.
func (s Segment) ExitSet() []hexcoord.Direction {
	out := make([]hexcoord.Direction, 0, len(s.Exits))
	for d := hexcoord.N; d <= hexcoord.NW; d++ {
		if s.Exits[d] {
			out = append(out, d)
		}
	}
	return out
}

// Rotated returns s rotated clockwise by k steps: every exit direction
// and the settlement slot (if any) rotate in lockstep; the Settlement
// reference itself is unchanged (rotation is a pure topology operation,
// not a fresh instantiation — see Tile.Instantiate).
func (s Segment) Rotated(k int) Segment {
	out := Segment{
		Exits:      make(map[hexcoord.Direction]bool, len(s.Exits)),
		Settlement: s.Settlement,
		Slot:       s.Slot.Rotate(k),
	}
	for d := range s.Exits {
		out.Exits[d.Rotate(k)] = true
	}
	return out
}
