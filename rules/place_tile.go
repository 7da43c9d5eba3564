package rules

import (
	"fmt"

	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/tile"
)

// PlaceTile validates and applies placing tileID, rotated by rotation,
// at h (spec.md §4.4):
//  1. tile color rank must not exceed the current phase's color rank.
//  2. the rotated candidate must preserve the old tile's track.
//  3. the rotated candidate must preserve the old tile's settlements.
//  4. labels must agree.
//  5. the candidate must not export track off the map.
//  6. one copy is deducted from the bank (unless debug-tagged), and the
//     board cell is replaced — station lists on shared slots carry over
//     from the old tile's City segments into the new ones, since a
//     station already placed survives its host tile's upgrade.
func (e *Engine) PlaceTile(h hexcoord.Hex, tileID string, rotation int) error {
	old, err := e.Board.TileAt(h)
	if err != nil {
		return err
	}
	template, err := e.Catalog.TileByID(tileID)
	if err != nil {
		return err
	}
	candidate := template.Rotated(rotation)

	if candidate.Colors.Rank() > e.Phase.Color.Rank() {
		return railerr.Rule(fmt.Sprintf("rules: tile %s color exceeds phase %s", tileID, e.Phase.ID))
	}
	if !tile.PreservesTrack(old, candidate) {
		return railerr.Rule(fmt.Sprintf("rules: tile %s does not preserve track of %s", tileID, old.ID))
	}
	if !tile.PreservesSettlements(old, candidate) {
		return railerr.Rule(fmt.Sprintf("rules: tile %s does not preserve settlements of %s", tileID, old.ID))
	}
	if old.Label != candidate.Label {
		return railerr.Rule(fmt.Sprintf("rules: tile %s label %q does not match %q", tileID, candidate.Label, old.Label))
	}
	if tile.GoesOutsideMap(candidate, h, e.Board.Has) {
		return railerr.Rule(fmt.Sprintf("rules: tile %s would export track off the map at %v", tileID, h))
	}

	placed := candidate.Instantiate()
	carryOverStations(old, placed)

	if err := e.Bank.TakeTile(tileID); err != nil {
		return err
	}
	return e.Board.SetTile(h, placed)
}

// carryOverStations copies each City's station list from old into the
// fresh instantiation of new at the matching settlement slot. Both tiles
// were already confirmed by PreservesSettlements to share identical,
// same-kind settlement slots.
func carryOverStations(old, fresh *tile.Tile) {
	for _, oldSeg := range old.Segments {
		oldCity, ok := oldSeg.Settlement.(*tile.City)
		if !ok {
			continue
		}
		seg, err := fresh.SegmentAt(oldSeg.Slot)
		if err != nil {
			continue
		}
		if newCity, ok := seg.Settlement.(*tile.City); ok {
			newCity.Stations = append(newCity.Stations, oldCity.Stations...)
		}
	}
}
