package catalog

import "github.com/railtopo/route18xx/tile"

// Phase is a rule epoch: the tile color it allows placement up to, the
// per-railway train limit it imposes, and the train id (if any) that
// rusts out of the game the moment this phase begins (spec.md §3).
//
// original_source/core/phase.py orders Phase by `@dataclass(order=True)`
// over its fields, which the file's own comment flags as "only works
// cause of iffy phase ordering" — it happens to sort correctly for the
// one dataset it ships with. Catalog.PhaseRank replaces that with
// declaration order, per spec.md §9 Open Question (a).
type Phase struct {
	ID    string
	Color tile.Color
	Limit int
	Rusts string // empty when this phase rusts nothing
}
