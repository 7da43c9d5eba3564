// File: tilecatalog.go
// Role: decodes the tile catalog wire format of spec.md §6 — an array
// of `{id, color: [ColorName,…], segments: [Segment], label?,
// upgrades: [id,…]}` records, each Segment a
// `{tracks: [Direction,…]?, settlement: {value,size?}|{values,modifiers}?,
// location: SlotName?}` — into the tile package's domain model.
package ioformats

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/tile"
)

type rawTile struct {
	ID       string       `json:"id"`
	Color    []string     `json:"color"`
	Segments []rawSegment `json:"segments"`
	Label    string       `json:"label,omitempty"`
	Upgrades []string     `json:"upgrades,omitempty"`
}

type rawSegment struct {
	Tracks     []string        `json:"tracks,omitempty"`
	Settlement json.RawMessage `json:"settlement,omitempty"`
	Location   string          `json:"location,omitempty"`
}

type rawSettlementSimple struct {
	Value int  `json:"value"`
	Size  *int `json:"size,omitempty"`
}

type rawSettlementOffboard struct {
	Values    map[string]int `json:"values"`
	Modifiers map[string]int `json:"modifiers,omitempty"`
}

// LoadTileCatalog decodes a tile catalog document into a map keyed by
// tile id, ready for catalog.NewCatalog's Tiles argument.
func LoadTileCatalog(data []byte) (map[string]*tile.Tile, error) {
	var raws []rawTile
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, railerr.InvalidArgument(fmt.Sprintf("ioformats: malformed tile catalog: %v", err))
	}
	out := make(map[string]*tile.Tile, len(raws))
	for _, r := range raws {
		t, err := decodeTile(r)
		if err != nil {
			return nil, err
		}
		out[t.ID] = t
	}
	return out, nil
}

func decodeTile(r rawTile) (*tile.Tile, error) {
	var colors tile.Color
	for _, name := range r.Color {
		c, err := parseColor(name)
		if err != nil {
			return nil, err
		}
		colors |= c
	}
	segs := make([]tile.Segment, len(r.Segments))
	for i, rs := range r.Segments {
		seg, err := decodeSegment(rs)
		if err != nil {
			return nil, fmt.Errorf("ioformats: tile %s segment %d: %w", r.ID, i, err)
		}
		segs[i] = seg
	}
	return &tile.Tile{
		ID:       r.ID,
		Colors:   colors,
		Label:    r.Label,
		Segments: segs,
		Upgrades: append([]string(nil), r.Upgrades...),
	}, nil
}

func decodeSegment(r rawSegment) (tile.Segment, error) {
	directions := make([]hexcoord.Direction, 0, len(r.Tracks))
	for _, name := range r.Tracks {
		d, err := parseDirection(name)
		if err != nil {
			return tile.Segment{}, err
		}
		directions = append(directions, d)
	}

	var settlement tile.Settlement
	var slot tile.SettlementSlot

	if len(r.Settlement) > 0 {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(r.Settlement, &probe); err != nil {
			return tile.Segment{}, railerr.InvalidArgument(fmt.Sprintf("ioformats: malformed settlement: %v", err))
		}
		if _, isOffboard := probe["values"]; isOffboard {
			var off rawSettlementOffboard
			if err := json.Unmarshal(r.Settlement, &off); err != nil {
				return tile.Segment{}, railerr.InvalidArgument(fmt.Sprintf("ioformats: malformed offboard settlement: %v", err))
			}
			byColor := make(map[tile.Color]int, len(off.Values))
			for name, v := range off.Values {
				c, err := parseColor(name)
				if err != nil {
					return tile.Segment{}, err
				}
				byColor[c] = v
			}
			settlement = tile.Offboard{ByColor: byColor, Overrides: off.Modifiers}
		} else {
			var simple rawSettlementSimple
			if err := json.Unmarshal(r.Settlement, &simple); err != nil {
				return tile.Segment{}, railerr.InvalidArgument(fmt.Sprintf("ioformats: malformed settlement: %v", err))
			}
			if simple.Size != nil && *simple.Size > 0 {
				settlement = &tile.City{Value: simple.Value, Capacity: *simple.Size}
			} else {
				settlement = tile.Town{Value: simple.Value}
			}
		}
		s, err := parseSlot(r.Location)
		if err != nil {
			return tile.Segment{}, err
		}
		slot = s
	}

	if settlement != nil {
		return tile.NewSettlementSegment(settlement, slot, directions...), nil
	}
	return tile.NewSegment(directions...), nil
}
