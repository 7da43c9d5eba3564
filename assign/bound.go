// File: bound.go
// Role: a cheap upper bound on how many trains could possibly be
// assigned at all, ignoring edge-disjointness, computed as a bipartite
// max-flow (lvlath/flow's Dinic) between trains and range-feasible
// routes. This is a genuine relaxation of the real problem (dropping
// the disjointness constraint only ever adds options), so it never
// under-counts the true optimum's train count and lets Solve short-
// circuit the zero case without running the exhaustive search at all.
package assign

import (
	"fmt"

	"github.com/railtopo/route18xx/core"
	"github.com/railtopo/route18xx/flow"
	"github.com/railtopo/route18xx/catalog"
	"github.com/railtopo/route18xx/routegraph"
	"github.com/railtopo/route18xx/routeenum"
)

// feasibleTrainBound returns an upper bound on the number of trains that
// could simultaneously receive a route, ignoring edge sharing.
func feasibleTrainBound(g *routegraph.Graph, trains []catalog.Train, routes []routeenum.Route) (int, error) {
	fg := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	const src, sink = "SRC", "SINK"
	_ = fg.AddVertex(src)
	_ = fg.AddVertex(sink)

	// Each route gets exactly one vertex and one rid->sink edge, added
	// once up front: a route reachable by several trains must not have
	// AddEdge(rid, sink, 1) re-issued per train, or the second issuance
	// collides with the first (fg is not built WithMultiEdges).
	for j := range routes {
		rid := fmt.Sprintf("R%d", j)
		_ = fg.AddVertex(rid)
		if _, err := fg.AddEdge(rid, sink, 1); err != nil {
			return 0, err
		}
	}

	for i, t := range trains {
		tid := fmt.Sprintf("T%d", i)
		_ = fg.AddVertex(tid)
		if _, err := fg.AddEdge(src, tid, 1); err != nil {
			return 0, err
		}
		for j, r := range routes {
			if r.Length(g) > t.EffectiveRange() {
				continue
			}
			rid := fmt.Sprintf("R%d", j)
			if _, err := fg.AddEdge(tid, rid, 1); err != nil {
				return 0, err
			}
		}
	}

	maxFlow, _, err := flow.Dinic(fg, src, sink, flow.FlowOptions{Epsilon: 1e-9})
	if err != nil {
		return 0, err
	}
	return int(maxFlow + 0.5), nil
}
