// File: save.go
// Role: the save/load round trip of spec.md §6 —
// `{trains: {railwayId: [trainId,…]}, board: {"A1": {tile: id, rotation:
// 0..5}}, stations: {"A1": [railwayId,…]}}` — plus the bank counts
// spec.md §8's round-trip law also requires ("Saving then loading
// yields a Game equal in Board, Railway trains, phase, and bank
// counts"): the literal schema in §6 omits bank state, so SaveGame adds
// an optional "bank" field carrying the same shape as the bank manifest
// format, grounded on original_source/core/database.py's single
// save-everything JSON blob.
//
// Loading is idempotent on a freshly constructed Game (spec.md §6):
// every Load* function here assumes b/railways/bnk were just built from
// the catalog/board-layout/bank-manifest documents, not already
// partially populated from a previous save.
package ioformats

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/railtopo/route18xx/bank"
	"github.com/railtopo/route18xx/board"
	"github.com/railtopo/route18xx/catalog"
	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/railway"
	"github.com/railtopo/route18xx/tile"
)

type rawSave struct {
	Trains   map[string][]string    `json:"trains,omitempty"`
	Board    map[string]rawSaveTile `json:"board,omitempty"`
	Stations map[string][]string    `json:"stations,omitempty"`
	Bank     *rawBankManifest       `json:"bank,omitempty"`
}

type rawSaveTile struct {
	Tile     string `json:"tile"`
	Rotation int    `json:"rotation"`
}

// LoadSave applies a save document onto a freshly constructed board and
// railway roster (spec.md §6's idempotent-load guarantee), optionally
// restoring bank counts onto bnk if the document carries a "bank" field.
func LoadSave(data []byte, cat *catalog.Catalog, b *board.Board, railways map[string]*railway.Railway, bnk *bank.Bank) error {
	var raw rawSave
	if err := json.Unmarshal(data, &raw); err != nil {
		return railerr.InvalidArgument(fmt.Sprintf("ioformats: malformed save file: %v", err))
	}

	for hexStr, st := range raw.Board {
		h, err := hexcoord.FromString(hexStr)
		if err != nil {
			return err
		}
		template, err := cat.TileByID(st.Tile)
		if err != nil {
			return err
		}
		placed := template.Rotated(st.Rotation).Instantiate()
		if err := b.SetTile(h, placed); err != nil {
			return err
		}
	}

	for hexStr, railwayIDs := range raw.Stations {
		h, err := hexcoord.FromString(hexStr)
		if err != nil {
			return err
		}
		t, err := b.TileAt(h)
		if err != nil {
			return err
		}
		city, err := firstCity(t)
		if err != nil {
			return err
		}
		for _, railwayID := range railwayIDs {
			city.Stations = append(city.Stations, railwayID)
			if r, ok := railways[railwayID]; ok {
				r.StationsRemaining--
				r.Floated = true
			}
		}
	}

	for railwayID, trainIDs := range raw.Trains {
		if r, ok := railways[railwayID]; ok {
			r.Trains = append([]string(nil), trainIDs...)
		}
	}

	if raw.Bank != nil && bnk != nil {
		bnk.RestoreFrom(raw.Bank.Tiles, raw.Bank.Trains)
	}
	return nil
}

// firstCity returns t's first City settlement, the assumption spec.md
// §6's hex-keyed (not hex+slot-keyed) "stations" map makes: a save
// file's station list targets a single city per hex, true of every
// preprinted and yellow-or-upgraded tile this catalog format describes.
func firstCity(t *tile.Tile) (*tile.City, error) {
	for _, seg := range t.Segments {
		if city, ok := seg.Settlement.(*tile.City); ok {
			return city, nil
		}
	}
	return nil, railerr.NotFound(fmt.Sprintf("ioformats: tile %s has no city settlement", t.ID))
}

// SaveGame serializes b and railways back into the save wire format,
// recovering each placed tile's rotation by comparing its track layout
// against the catalog template at each of the six rotations (Tile
// itself carries no rotation counter once instantiated — spec.md §3's
// "immutable template plus rotation counter" lives in the comparison,
// not in stored state).
func SaveGame(cat *catalog.Catalog, b *board.Board, railways map[string]*railway.Railway, bnk *bank.Bank) ([]byte, error) {
	raw := rawSave{
		Trains:   make(map[string][]string),
		Board:    make(map[string]rawSaveTile),
		Stations: make(map[string][]string),
	}

	var outerErr error
	b.Each(func(h hexcoord.Hex, t *tile.Tile) {
		if outerErr != nil || t.ID == "" || t.ID == tile.BlankID {
			return
		}
		template, err := cat.TileByID(t.ID)
		if err != nil {
			outerErr = err
			return
		}
		rotation, ok := rotationOf(template, t)
		if !ok {
			outerErr = railerr.InvalidArgument(fmt.Sprintf("ioformats: placed tile at %v does not match any rotation of catalog tile %s", h, t.ID))
			return
		}
		raw.Board[h.String()] = rawSaveTile{Tile: t.ID, Rotation: rotation}

		for _, seg := range t.Segments {
			if city, ok := seg.Settlement.(*tile.City); ok && len(city.Stations) > 0 {
				raw.Stations[h.String()] = append(raw.Stations[h.String()], city.Stations...)
			}
		}
	})
	if outerErr != nil {
		return nil, outerErr
	}

	for id, r := range railways {
		raw.Trains[id] = append([]string(nil), r.Trains...)
	}

	if bnk != nil {
		raw.Bank = &rawBankManifest{Tiles: bnk.Snapshot(), Trains: bnk.TrainSnapshot()}
	}

	out, err := json.Marshal(raw)
	if err != nil {
		return nil, railerr.InvalidArgument(fmt.Sprintf("ioformats: save encode failed: %v", err))
	}
	return out, nil
}

// rotationOf finds the rotation k in 0..5 such that template.Rotated(k)'s
// exit sets match placed's, ignoring station lists (which only exist on
// the placed instantiation, never the template).
func rotationOf(template, placed *tile.Tile) (int, bool) {
	for k := 0; k < 6; k++ {
		if exitsMatch(template.Rotated(k).Segments, placed.Segments) {
			return k, true
		}
	}
	return 0, false
}

func exitsMatch(a, b []tile.Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Slot != b[i].Slot {
			return false
		}
		if len(a[i].ExitSet()) != len(b[i].ExitSet()) {
			return false
		}
		for _, d := range a[i].ExitSet() {
			if !b[i].HasExit(d) {
				return false
			}
		}
	}
	return true
}
