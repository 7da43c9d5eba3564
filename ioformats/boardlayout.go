// File: boardlayout.go
// Role: decodes the board layout wire format of spec.md §6 —
// `{shape: {columnLetter: [[startRow, length],…]}, preprinted: {"A1":
// tileId,…}, tiles: [Tile,…], railways: [{id, name, home, color}]}` —
// into a board.Board and the railway.Railway roster declared for it.
// "shape" enumerates valid hexes column-wise; rows within a chunk step
// by 2 (doubled coordinates), per spec.md §6.
package ioformats

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/railtopo/route18xx/board"
	"github.com/railtopo/route18xx/catalog"
	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/railway"
	"github.com/railtopo/route18xx/tile"
)

// DefaultStationsRemaining is the starting station-token count given to
// every railway a board layout declares. The wire format (spec.md §6)
// carries no per-railway token count, so every railway starts with the
// same supply; a scenario needing a different count can adjust
// Railway.StationsRemaining after LoadBoardLayout returns.
const DefaultStationsRemaining = 4

type rawBoardLayout struct {
	Shape      map[string][][2]int  `json:"shape"`
	Preprinted map[string]string    `json:"preprinted,omitempty"`
	Tiles      []rawTile            `json:"tiles,omitempty"`
	Railways   []rawRailwayDeclared `json:"railways,omitempty"`
}

type rawRailwayDeclared struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Home  string `json:"home"`
	Color string `json:"color"`
}

// LoadBoardLayout decodes a board layout document, instantiating
// preprinted tiles from cat (falling back to any scenario-specific
// tile templates the document itself declares under "tiles") and
// building one railway.Railway per declared entry.
func LoadBoardLayout(data []byte, cat *catalog.Catalog, blank *tile.Tile) (*board.Board, map[string]*railway.Railway, error) {
	var raw rawBoardLayout
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, railerr.InvalidArgument(fmt.Sprintf("ioformats: malformed board layout: %v", err))
	}

	hexes, err := shapeHexes(raw.Shape)
	if err != nil {
		return nil, nil, err
	}
	b := board.New(hexes, blank)

	localTiles := make(map[string]*tile.Tile, len(raw.Tiles))
	for _, rt := range raw.Tiles {
		t, err := decodeTile(rt)
		if err != nil {
			return nil, nil, err
		}
		localTiles[t.ID] = t
	}
	lookupTile := func(id string) (*tile.Tile, error) {
		if t, ok := localTiles[id]; ok {
			return t, nil
		}
		return cat.TileByID(id)
	}

	for hexStr, tileID := range raw.Preprinted {
		h, err := hexcoord.FromString(hexStr)
		if err != nil {
			return nil, nil, err
		}
		template, err := lookupTile(tileID)
		if err != nil {
			return nil, nil, err
		}
		if err := b.SetTile(h, template.Instantiate()); err != nil {
			return nil, nil, err
		}
	}

	railways := make(map[string]*railway.Railway, len(raw.Railways))
	for _, rr := range raw.Railways {
		home, err := hexcoord.FromString(rr.Home)
		if err != nil {
			return nil, nil, err
		}
		railways[rr.ID] = &railway.Railway{
			ID:                rr.ID,
			Name:              rr.Name,
			Home:              home,
			Color:             rr.Color,
			StationsRemaining: DefaultStationsRemaining,
		}
	}

	return b, railways, nil
}

// shapeHexes expands the column-wise run-length "shape" encoding into
// the concrete hex list board.New needs: for each column letter, each
// [startRow, length] pair enumerates length hexes at rows
// startRow, startRow+2, ..., reusing hexcoord.FromString's doubled
// coordinate parser for the arithmetic.
func shapeHexes(shape map[string][][2]int) ([]hexcoord.Hex, error) {
	var out []hexcoord.Hex
	for col, runs := range shape {
		for _, run := range runs {
			start, length := run[0], run[1]
			for i := 0; i < length; i++ {
				row := start + 2*i
				h, err := hexcoord.FromString(fmt.Sprintf("%s%d", col, row))
				if err != nil {
					return nil, err
				}
				out = append(out, h)
			}
		}
	}
	return out, nil
}
