package rules

import (
	"fmt"

	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/tile"
)

// PlaceStation validates and applies placing a station token for
// railwayID at (h, slot) (spec.md §4.4): the segment there must be a
// City with room, and railwayID must have a station token left to spend.
func (e *Engine) PlaceStation(h hexcoord.Hex, slot tile.SettlementSlot, railwayID string) error {
	r := e.railwayOrPanic(railwayID)

	seg, err := e.Board.SegmentAt(h, slot)
	if err != nil {
		return err
	}
	city, ok := seg.Settlement.(*tile.City)
	if !ok {
		return railerr.Rule(fmt.Sprintf("rules: %v slot %v is not a city", h, slot))
	}
	if len(city.Stations) >= city.Capacity {
		return railerr.Rule(fmt.Sprintf("rules: city is full at %v", h))
	}
	if r.StationsRemaining <= 0 {
		return railerr.Rule(fmt.Sprintf("rules: railway %s has no stations remaining", railwayID))
	}

	city.Stations = append(city.Stations, railwayID)
	r.StationsRemaining--
	r.Floated = true
	return nil
}
