// File: solve.go
// Role: the exhaustive subset+assignment branch-and-bound search
// (spec.md §4.7): tries every feasible placement of routes into train
// slots (including leaving a train unassigned), rejecting any placement
// where two trains would share an Edge, and keeps the first
// maximum-value placement found. Structured as a small engine value
// (trains/routes/precomputed per-(train,route) values) in the same
// shape as tsp/bb.go's bbEngine, per DESIGN.md.
package assign

import (
	"github.com/railtopo/route18xx/catalog"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/routegraph"
	"github.com/railtopo/route18xx/routeenum"
	"github.com/railtopo/route18xx/tile"
)

// TrainAssignment is one train's outcome: the route it received (nil if
// left unassigned) and the revenue that route earns for this train.
type TrainAssignment struct {
	Train catalog.Train
	Route *routeenum.Route
	Value int
}

// Solution is a per-train assignment of routes and the total revenue
// (spec.md §3).
type Solution struct {
	Assignments []TrainAssignment // one entry per train, in train order
	Total       int
}

type candidate struct {
	route   routeenum.Route
	length  int
	edgeIDs []string
	value   []int // value[trainIdx] if this route is given to that train
}

// Solve chooses the revenue-maximizing assignment of routes to trains
// (spec.md §4.7). phaseColor is the current phase's tile color, used to
// resolve Offboard revenue.
func Solve(g *routegraph.Graph, trains []catalog.Train, routes []routeenum.Route, phaseColor tile.Color) (*Solution, error) {
	if len(trains) == 0 {
		return &Solution{}, nil
	}

	bound, err := feasibleTrainBound(g, trains, routes)
	if err != nil {
		return nil, err
	}
	if bound == 0 {
		out := make([]TrainAssignment, len(trains))
		for i, t := range trains {
			out[i] = TrainAssignment{Train: t}
		}
		return &Solution{Assignments: out}, nil
	}

	cands, err := buildCandidates(g, trains, routes, phaseColor)
	if err != nil {
		return nil, err
	}

	e := &bbEngine{trains: trains, cands: cands}
	e.chosen = make([]int, len(trains))
	e.best = make([]int, len(trains))
	for i := range e.chosen {
		e.chosen[i] = -1
		e.best[i] = -1
	}
	e.usedEdges = make(map[string]bool)
	e.search(0, 0)

	out := make([]TrainAssignment, len(trains))
	for i, t := range trains {
		ta := TrainAssignment{Train: t}
		if j := e.best[i]; j >= 0 {
			r := cands[j].route
			ta.Route = &r
			ta.Value = cands[j].value[i]
		}
		out[i] = ta
	}
	return &Solution{Assignments: out, Total: e.bestValue}, nil
}

func buildCandidates(g *routegraph.Graph, trains []catalog.Train, routes []routeenum.Route, phaseColor tile.Color) ([]candidate, error) {
	cands := make([]candidate, len(routes))
	for i, r := range routes {
		c := candidate{route: r, length: r.Length(g), edgeIDs: r.EdgeIDs(), value: make([]int, len(trains))}
		cities := r.Cities(g)
		for ti, t := range trains {
			total := 0
			for _, cn := range cities {
				settlement, err := g.SettlementAt(cn)
				if err != nil {
					if railerr.Is(err, railerr.KindNotFound) {
						continue
					}
					return nil, err
				}
				total += settlement.Revenue(t.ID, phaseColor)
			}
			c.value[ti] = total
		}
		cands[i] = c
	}
	return cands, nil
}

// bbEngine runs the recursive search over train slots 0..len(trains)-1.
type bbEngine struct {
	trains    []catalog.Train
	cands     []candidate
	usedEdges map[string]bool
	chosen    []int
	best      []int
	bestValue int
}

func (e *bbEngine) search(idx, value int) {
	if idx == len(e.trains) {
		if value > e.bestValue {
			e.bestValue = value
			copy(e.best, e.chosen)
		}
		return
	}

	// Leave this train unassigned.
	e.chosen[idx] = -1
	e.search(idx+1, value)

	train := e.trains[idx]
	for j, c := range e.cands {
		if c.length > train.EffectiveRange() {
			continue
		}
		if e.conflicts(c.edgeIDs) {
			continue
		}
		e.markEdges(c.edgeIDs, true)
		e.chosen[idx] = j
		e.search(idx+1, value+c.value[idx])
		e.markEdges(c.edgeIDs, false)
	}
	e.chosen[idx] = -1
}

func (e *bbEngine) conflicts(edgeIDs []string) bool {
	for _, id := range edgeIDs {
		if e.usedEdges[id] {
			return true
		}
	}
	return false
}

func (e *bbEngine) markEdges(edgeIDs []string, used bool) {
	for _, id := range edgeIDs {
		if used {
			e.usedEdges[id] = true
		} else {
			delete(e.usedEdges, id)
		}
	}
}
