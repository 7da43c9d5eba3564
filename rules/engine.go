package rules

import (
	"github.com/railtopo/route18xx/bank"
	"github.com/railtopo/route18xx/board"
	"github.com/railtopo/route18xx/catalog"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/railway"
)

// Engine is the sole mutator of Board, Bank, and Railway state. It holds
// no state of its own beyond references to the collaborators it
// coordinates; every method call here is the single-operation
// transaction spec.md §7 requires — fully applied or fully rejected.
type Engine struct {
	Catalog  *catalog.Catalog
	Board    *board.Board
	Bank     *bank.Bank
	Railways map[string]*railway.Railway
	Phase    catalog.Phase
}

// railwayOrPanic looks up a railway the caller already knows exists
// (game-level invariant, not a rule the player can violate); a miss here
// is an internal inconsistency, not a RuleError.
func (e *Engine) railwayOrPanic(id string) *railway.Railway {
	r, ok := e.Railways[id]
	if !ok {
		railerr.Internal("rules: unknown railway " + id)
	}
	return r
}
