// File: matching.go
// Role: upgrade-legality checks — does a candidate tile, already at the
// specific rotation it would be placed at, preserve every track
// connection (PreservesTrack) and every settlement (PreservesSettlements)
// of the tile it replaces? Callers that need to search over rotations
// (rules.PlaceTile trying the rotation a player picked, or a board-editor
// offering every legal rotation) call Tile.Rotated(k) themselves first —
// these checks never rotate on the caller's behalf (spec.md §4.2:
// "Tile (immutable template plus rotation counter)").
//
// Design:
//   - Deterministic: old segments are matched against new segments in
//     slice order; the first valid assignment found is the one used.
//   - Side-effect-free: neither tile is mutated.
//   - Backtracking set-injection search, grounded on the greedy/backtrack
//     matching technique in tsp/matching.go (old elements matched against
//     remaining candidates one at a time, shrinking the candidate set).
package tile

// PreservesTrack reports whether newTile preserves every track set of
// old: there must exist an injective assignment from old's non-empty
// segments to newTile's non-empty segments such that each old segment's
// exit set is a subset of its image's (spec.md §4.2).
func PreservesTrack(old, newTile *Tile) bool {
	return matchInjective(nonEmpty(old.Segments), nonEmpty(newTile.Segments))
}

func nonEmpty(segs []Segment) []Segment {
	var out []Segment
	for _, s := range segs {
		if len(s.Exits) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// matchInjective reports whether every element of oldSegs can be
// injected into a distinct element of newSegs whose exit set is a
// superset of the old one's.
func matchInjective(oldSegs, newSegs []Segment) bool {
	used := make([]bool, len(newSegs))
	return matchFrom(oldSegs, newSegs, used, 0)
}

func matchFrom(oldSegs, newSegs []Segment, used []bool, i int) bool {
	if i == len(oldSegs) {
		return true
	}
	old := oldSegs[i]
	for j, cand := range newSegs {
		if used[j] || !exitsSuperset(cand, old) {
			continue
		}
		used[j] = true
		if matchFrom(oldSegs, newSegs, used, i+1) {
			return true
		}
		used[j] = false
	}
	return false
}

// exitsSuperset reports whether cand's exit set contains every direction
// in old's exit set.
func exitsSuperset(cand, old Segment) bool {
	for d := range old.Exits {
		if !cand.Exits[d] {
			return false
		}
	}
	return true
}

// PreservesSettlements reports whether newTile's slot-to-settlement
// mapping preserves old's: old's occupied slots and newTile's occupied
// slots are identical sets, and for each shared slot the new settlement
// is the same kind as the old one and dominates it in value (a City
// additionally needs capacity ≥ old's; spec.md §4.2's "self.value ≥
// old.value... Offboard-vs-Town/City... mismatch fails").
func PreservesSettlements(old, newTile *Tile) bool {
	oldSlots := settlementSlots(old)
	newSlots := settlementSlots(newTile)
	if len(oldSlots) != len(newSlots) {
		return false
	}
	for slot, oldSettlement := range oldSlots {
		newSettlement, ok := newSlots[slot]
		if !ok || !dominates(newSettlement, oldSettlement) {
			return false
		}
	}
	return true
}

func settlementSlots(t *Tile) map[SettlementSlot]Settlement {
	out := make(map[SettlementSlot]Settlement)
	for _, seg := range t.Segments {
		if seg.HasSettlement() {
			out[seg.Slot] = seg.Settlement
		}
	}
	return out
}

// dominates reports whether newS is the same kind of settlement as oldS
// and is at least as valuable.
func dominates(newS, oldS Settlement) bool {
	switch old := oldS.(type) {
	case Town:
		n, ok := newS.(Town)
		return ok && n.Value >= old.Value
	case *City:
		n, ok := newS.(*City)
		return ok && n.Value >= old.Value && n.Capacity >= old.Capacity
	case Offboard:
		n, ok := newS.(Offboard)
		if !ok {
			return false
		}
		for color, v := range old.ByColor {
			if n.ByColor[color] < v {
				return false
			}
		}
		return true
	default:
		return false
	}
}
