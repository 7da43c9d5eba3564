// File: game.go
// Role: the aggregate value a CLI or other caller holds for one
// in-progress game, grounded on original_source/core/game.py's Game
// class (there: year + manifest + board; here: catalog + board + bank +
// railways + the rules engine that mutates them, per spec.md §9's
// "Global mutation by __init__-on-existing-object... becomes an
// explicit Game::reset(year) that returns a fresh Game").
package game

import (
	"github.com/railtopo/route18xx/assign"
	"github.com/railtopo/route18xx/bank"
	"github.com/railtopo/route18xx/board"
	"github.com/railtopo/route18xx/catalog"
	"github.com/railtopo/route18xx/ioformats"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/railway"
	"github.com/railtopo/route18xx/rules"
	"github.com/railtopo/route18xx/tile"
)

// Sources is the set of wire documents a Game is built from. Reset
// replays these verbatim to produce a fresh Game, the Go analogue of
// original_source/core/game.py's "construct a new Game(year) instead of
// mutating the old one in place".
type Sources struct {
	TileCatalog  []byte
	TrainCatalog []byte
	BoardLayout  []byte
	BankManifest []byte
}

// Game is the aggregate a CLI session mutates one PlaceTile/PlaceStation/
// GiveTrain at a time, and queries one SolveRailway at a time.
type Game struct {
	Catalog  *catalog.Catalog
	Board    *board.Board
	Bank     *bank.Bank
	Railways map[string]*railway.Railway
	Engine   *rules.Engine

	sources Sources
}

// New loads src into a fresh Game: tile/train catalog, board layout, and
// bank manifest are decoded via ioformats, the current phase is set to
// the catalog's first declared phase, and a rules.Engine is wired up as
// the sole mutator (spec.md §4.4/§5).
func New(src Sources) (*Game, error) {
	cat, err := ioformats.LoadCatalog(src.TileCatalog, src.TrainCatalog)
	if err != nil {
		return nil, err
	}

	blank := tile.NewBlankTemplate()
	b, railways, err := ioformats.LoadBoardLayout(src.BoardLayout, cat, blank)
	if err != nil {
		return nil, err
	}

	bnk, err := ioformats.LoadBankManifest(src.BankManifest)
	if err != nil {
		return nil, err
	}

	phase, err := cat.FirstPhase()
	if err != nil {
		return nil, err
	}

	g := &Game{
		Catalog:  cat,
		Board:    b,
		Bank:     bnk,
		Railways: railways,
		sources:  src,
	}
	g.Engine = &rules.Engine{
		Catalog:  cat,
		Board:    b,
		Bank:     bnk,
		Railways: railways,
		Phase:    phase,
	}
	return g, nil
}

// Reset rebuilds a fresh Game from the source documents this one was
// loaded from, discarding every mutation applied since (spec.md §9's
// explicit-reset design note, replacing the Python singleton's in-place
// re-init).
func (g *Game) Reset() (*Game, error) {
	return New(g.sources)
}

// LoadSave applies a save document onto g in place (spec.md §6's
// idempotent-load guarantee assumes a freshly constructed Game; callers
// typically call Reset immediately before LoadSave to guarantee that).
func (g *Game) LoadSave(data []byte) error {
	return ioformats.LoadSave(data, g.Catalog, g.Board, g.Railways, g.Bank)
}

// Save serializes g's current board, railways, and bank counts.
func (g *Game) Save() ([]byte, error) {
	return ioformats.SaveGame(g.Catalog, g.Board, g.Railways, g.Bank)
}

// Railway looks up a railway by id, reporting NotFound for an unknown
// id rather than the internal-inconsistency panic rules.Engine uses
// internally (a caller-supplied railway id is ordinary untrusted input,
// not an already-validated game invariant).
func (g *Game) Railway(id string) (*railway.Railway, error) {
	r, ok := g.Railways[id]
	if !ok {
		return nil, railerr.NotFound("game: no railway " + id)
	}
	return r, nil
}

// PlaceTile delegates to rules.Engine.PlaceTile.
func (g *Game) PlaceTile(h string, tileID string, rotation int) error {
	hex, err := hexFromString(h)
	if err != nil {
		return err
	}
	return g.Engine.PlaceTile(hex, tileID, rotation)
}

// PlaceStation delegates to rules.Engine.PlaceStation.
func (g *Game) PlaceStation(h string, slot tile.SettlementSlot, railwayID string) error {
	hex, err := hexFromString(h)
	if err != nil {
		return err
	}
	return g.Engine.PlaceStation(hex, slot, railwayID)
}

// GiveTrain delegates to rules.Engine.GiveTrain.
func (g *Game) GiveTrain(trainID, railwayID string) error {
	return g.Engine.GiveTrain(trainID, railwayID)
}

// SolveRailway computes railwayID's maximum-revenue train-to-route
// assignment against g's current board and phase (spec.md §1/§4.7).
func (g *Game) SolveRailway(railwayID string) (*assign.Solution, error) {
	r, err := g.Railway(railwayID)
	if err != nil {
		return nil, err
	}
	return assign.SolveRailway(g.Catalog, g.Board, r, g.Engine.Phase)
}
