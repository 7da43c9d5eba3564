// File: catalog.go
// Role: the explicit, read-only rule-table value that replaces
// original_source/core/database.py's process-wide Database singleton
// (spec.md §9). A Game holds exactly one Catalog and every "from id"
// lookup the Python source routed through Database() becomes a method
// call against this value instead.
package catalog

import (
	"fmt"

	"github.com/railtopo/route18xx/core"
	"github.com/railtopo/route18xx/dfs"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/tile"
)

// Catalog is the immutable rule set for one game: the ordered phase
// table, the train roster, and the tile manifest. Construct it once via
// NewCatalog, which validates the rust references form a DAG.
type Catalog struct {
	Phases []Phase
	Trains []Train
	Tiles  map[string]*tile.Tile

	phaseIndex map[string]int
	trainIndex map[string]int
}

// NewCatalog builds a Catalog from the given tables, validating that no
// phase's rusts id is referenced by a cycle of rust references (e.g. two
// phases that would rust each other's trigger train, an impossible
// sequence in play). Grounded on dfs.TopologicalSort, the same
// acyclicity check this package's teacher library uses for dependency
// ordering.
func NewCatalog(phases []Phase, trains []Train, tiles map[string]*tile.Tile) (*Catalog, error) {
	c := &Catalog{
		Phases:     phases,
		Trains:     trains,
		Tiles:      tiles,
		phaseIndex: make(map[string]int, len(phases)),
		trainIndex: make(map[string]int, len(trains)),
	}
	for i, p := range phases {
		c.phaseIndex[p.ID] = i
	}
	for i, tr := range trains {
		c.trainIndex[tr.ID] = i
	}
	if err := validateRustDAG(phases); err != nil {
		return nil, err
	}
	return c, nil
}

// validateRustDAG rejects a phase table whose rust references form a
// cycle: build a directed graph with one vertex per phase id and an edge
// phase→rusts for every phase that rusts a train, then require it to be
// acyclic.
func validateRustDAG(phases []Phase) error {
	g := core.NewGraph(core.WithDirected(true))
	for _, p := range phases {
		_ = g.AddVertex(p.ID)
	}
	for _, p := range phases {
		if p.Rusts == "" {
			continue
		}
		if !g.HasVertex(p.Rusts) {
			continue // rusts an id with no phase of its own; nothing to order against
		}
		if _, err := g.AddEdge(p.ID, p.Rusts, 0); err != nil {
			return railerr.InvalidArgument(fmt.Sprintf("catalog: rust edge %s->%s: %v", p.ID, p.Rusts, err))
		}
	}
	if _, err := dfs.TopologicalSort(g); err != nil {
		return railerr.InvalidArgument(fmt.Sprintf("catalog: phase rust references contain a cycle: %v", err))
	}
	return nil
}

// PhaseByID looks up a phase by id.
func (c *Catalog) PhaseByID(id string) (Phase, error) {
	i, ok := c.phaseIndex[id]
	if !ok {
		return Phase{}, railerr.NotFound(fmt.Sprintf("catalog: no phase %q", id))
	}
	return c.Phases[i], nil
}

// TrainByID looks up a train by id.
func (c *Catalog) TrainByID(id string) (Train, error) {
	i, ok := c.trainIndex[id]
	if !ok {
		return Train{}, railerr.NotFound(fmt.Sprintf("catalog: no train %q", id))
	}
	return c.Trains[i], nil
}

// TileByID looks up a catalog tile template by id.
func (c *Catalog) TileByID(id string) (*tile.Tile, error) {
	t, ok := c.Tiles[id]
	if !ok {
		return nil, railerr.NotFound(fmt.Sprintf("catalog: no tile %q", id))
	}
	return t, nil
}

// PhaseRank returns id's position in declaration order — the totally
// ordered comparison spec.md §9 Open Question (a) requires in place of
// the source's incidental id-lex ordering.
func (c *Catalog) PhaseRank(id string) (int, error) {
	i, ok := c.phaseIndex[id]
	if !ok {
		return 0, railerr.NotFound(fmt.Sprintf("catalog: no phase %q", id))
	}
	return i, nil
}

// FirstPhase returns the earliest declared phase.
func (c *Catalog) FirstPhase() (Phase, error) {
	if len(c.Phases) == 0 {
		return Phase{}, railerr.NotFound("catalog: no phases declared")
	}
	return c.Phases[0], nil
}

// NextPhase returns the phase declared immediately after current.
func (c *Catalog) NextPhase(current Phase) (Phase, error) {
	i, ok := c.phaseIndex[current.ID]
	if !ok {
		return Phase{}, railerr.NotFound(fmt.Sprintf("catalog: no phase %q", current.ID))
	}
	if i+1 >= len(c.Phases) {
		return Phase{}, railerr.Rule("catalog: no phase after the final phase")
	}
	return c.Phases[i+1], nil
}

// PrevPhase returns the phase declared immediately before current.
func (c *Catalog) PrevPhase(current Phase) (Phase, error) {
	i, ok := c.phaseIndex[current.ID]
	if !ok {
		return Phase{}, railerr.NotFound(fmt.Sprintf("catalog: no phase %q", current.ID))
	}
	if i == 0 {
		return Phase{}, railerr.Rule("catalog: no phase before the first phase")
	}
	return c.Phases[i-1], nil
}

// PhasesBetween returns every phase strictly after from and up to and
// including to, in declaration order — the intermediate advances
// give_train's cascading rust must walk (spec.md §4.4).
func (c *Catalog) PhasesBetween(from, to Phase) ([]Phase, error) {
	fi, ok := c.phaseIndex[from.ID]
	if !ok {
		return nil, railerr.NotFound(fmt.Sprintf("catalog: no phase %q", from.ID))
	}
	ti, ok := c.phaseIndex[to.ID]
	if !ok {
		return nil, railerr.NotFound(fmt.Sprintf("catalog: no phase %q", to.ID))
	}
	if ti < fi {
		return nil, nil
	}
	return append([]Phase(nil), c.Phases[fi+1:ti+1]...), nil
}
