// File: bound.go
// Role: an admissible lower bound, per home node, on how many more
// CityNodes a walk must cross to reach any given node — used to prune
// branches that cannot possibly stay within the remaining range before
// the walker even tries them. Grounded on lvlath/dijkstra (unit-weight
// shortest paths over the routegraph's raw edges) combined with the
// same "cheap admissible bound before the expensive exact search"
// philosophy as tsp's one-tree bound (tsp/bound_onetree.go).
package routeenum

import (
	"math"

	"github.com/railtopo/route18xx/core"
	"github.com/railtopo/route18xx/dijkstra"
	"github.com/railtopo/route18xx/routegraph"
)

// cityBound estimates, for every node reachable from home, the minimum
// number of additional CityNodes a walk starting at home must cross to
// reach it. Every edge in the RouteGraph connects a City to a Junction
// or a Junction to a Junction — never City to City directly — so any
// path between two distinct city nodes crosses at least 2 raw edges;
// ceil(edgeDistance/2) is therefore never larger than the true number of
// intervening cities, making it a safe (admissible) lower bound: it may
// under-prune but never discards a feasible route.
func cityBound(g *routegraph.Graph, home string) (map[string]int, error) {
	weighted := core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	for id := range g.Cities {
		_ = weighted.AddVertex(id)
	}
	for id := range g.Junctions {
		_ = weighted.AddVertex(id)
	}
	for _, e := range g.Edges {
		if _, err := weighted.AddEdge(e.A, e.B, 1); err != nil {
			return nil, err
		}
	}

	dist, _, err := dijkstra.Dijkstra(weighted, dijkstra.Source(home))
	if err != nil {
		return nil, err
	}

	out := make(map[string]int, len(dist))
	for id, d := range dist {
		if d == math.MaxInt64 {
			continue
		}
		out[id] = int((d + 1) / 2)
	}
	return out, nil
}
