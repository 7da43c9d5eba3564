// File: railway.go
// Role: the end-to-end entry point spec.md §1 describes — build the
// RouteGraph for one railway, enumerate its routes, and assign them to
// trains — plus the failure-model checks spec.md §4.8 requires before
// any of that runs.
package assign

import (
	"fmt"

	"github.com/railtopo/route18xx/board"
	"github.com/railtopo/route18xx/catalog"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/railway"
	"github.com/railtopo/route18xx/routeenum"
	"github.com/railtopo/route18xx/routegraph"
)

// SolveRailway computes the maximum-revenue assignment of railwayID's
// trains to edge-disjoint routes over b (spec.md §1). It fails RuleError
// if the railway has not floated or holds no trains (spec.md §4.8).
func SolveRailway(cat *catalog.Catalog, b *board.Board, r *railway.Railway, phase catalog.Phase) (*Solution, error) {
	if !r.Floated {
		return nil, railerr.Rule(fmt.Sprintf("assign: railway %s has not floated", r.ID))
	}
	if len(r.Trains) == 0 {
		return nil, railerr.Rule(fmt.Sprintf("assign: railway %s holds no trains", r.ID))
	}

	trains := make([]catalog.Train, 0, len(r.Trains))
	maxRange := 0
	for _, id := range r.Trains {
		t, err := cat.TrainByID(id)
		if err != nil {
			return nil, err
		}
		trains = append(trains, t)
		if eff := t.EffectiveRange(); eff > maxRange {
			maxRange = eff
		}
	}

	g, err := routegraph.Build(b, r)
	if err != nil {
		return nil, err
	}
	routes, err := routeenum.Enumerate(g, maxRange)
	if err != nil {
		return nil, err
	}
	return Solve(g, trains, routes, phase.Color)
}
