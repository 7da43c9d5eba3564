// File: enumerate.go
// Role: the exhaustive route enumerator (spec.md §4.6), grounded on
// original_source/solver/bruteforcer.py's _build_routes (per-home DFS
// walk collection) and _merge_routes (pairing home-rooted walks that
// share a start into a single through-route).
package routeenum

import (
	"github.com/railtopo/route18xx/routegraph"
)

// Enumerate returns every legal route for the railway g was built for,
// capped at maxRange CityNodes (spec.md §4.6). Callers pass the largest
// EffectiveRange among the railway's trains (catalog.Train.EffectiveRange).
func Enumerate(g *routegraph.Graph, maxRange int) ([]Route, error) {
	var all []Route
	byHome := make(map[string][]Route, len(g.Homes))

	for _, home := range g.Homes {
		bound, err := cityBound(g, home)
		if err != nil {
			return nil, err
		}
		w := &walker{g: g, maxRange: maxRange, bound: bound}
		if err := w.walk([]string{home}, nil, 1); err != nil {
			return nil, err
		}
		byHome[home] = w.results
		all = append(all, w.results...)
	}

	for _, home := range g.Homes {
		all = append(all, mergeHomeRooted(byHome[home], maxRange)...)
	}

	return dedupeByCanonical(withAtLeastTwoCities(all)), nil
}

// withAtLeastTwoCities drops the degenerate single-city "route" that
// stands for a walk which never left home: a Route scores revenue along
// track actually run, so it must connect at least two distinct
// CityNodes. The single-home partial is only ever useful as raw
// material for the merge phase above, never as a final candidate.
func withAtLeastTwoCities(routes []Route) []Route {
	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		if countCitiesNoGraph(r.Nodes) >= 2 {
			out = append(out, r)
		}
	}
	return out
}

// walker carries the per-home search state for one DFS walk.
type walker struct {
	g        *routegraph.Graph
	maxRange int
	bound    map[string]int // cityBound(home): minimum remaining cities to reach a node
	results  []Route
}

// walk extends path/edges one step at a time, enforcing every invariant
// spec.md §4.6 lists: no repeated node, at most maxRange CityNodes, no
// U-turn at a junction, and no expansion past a blocking city.
func (w *walker) walk(path []string, edges []routegraph.Edge, cityCount int) error {
	last := path[len(path)-1]

	if w.g.IsCity(last) {
		w.results = append(w.results, Route{
			Nodes: append([]string(nil), path...),
			Edges: append([]routegraph.Edge(nil), edges...),
		})
		cn := w.g.Cities[last]
		blocking, err := w.g.IsBlocking(cn)
		if err != nil {
			return err
		}
		if blocking {
			return nil
		}
	}
	if cityCount >= w.maxRange {
		return nil
	}

	outgoing, err := w.g.NodeEdges(last)
	if err != nil {
		return err
	}
	visited := make(map[string]bool, len(path))
	for _, id := range path {
		visited[id] = true
	}
	lastIsJunction := !w.g.IsCity(last)

	for _, e := range outgoing {
		next := e.OtherEnd(last)
		if visited[next] {
			continue // no-repeat node: prevents subtours.
		}
		if lastIsJunction && len(edges) > 0 && edges[len(edges)-1].Hex == e.Hex {
			continue // no U-turn: can't re-traverse the same hex step.
		}
		nextCityCount := cityCount
		if w.g.IsCity(next) {
			nextCityCount++
		}
		if nextCityCount > w.maxRange {
			continue
		}
		if b, ok := w.bound[next]; ok && cityCount+b > w.maxRange {
			continue // admissible bound: no surviving extension can stay in range.
		}

		if err := w.walk(append(path, next), append(edges, e), nextCityCount); err != nil {
			return err
		}
	}
	return nil
}

// mergeHomeRooted pairs every two home-rooted routes sharing home, per
// spec.md §4.6's merge phase and design note (b): only pairs with an
// identical start node are merged; multi-home merging is left undone.
func mergeHomeRooted(homeRooted []Route, maxRange int) []Route {
	var merged []Route
	for i := 0; i < len(homeRooted); i++ {
		for j := i + 1; j < len(homeRooted); j++ {
			r1, r2 := homeRooted[i], homeRooted[j]
			route := Route{
				Nodes: append(reversed(r1.Nodes), r2.Nodes[1:]...),
				Edges: append(reverseEdges(r1.Edges), r2.Edges...),
			}
			if route.HasSubtour() {
				continue
			}
			if countCitiesNoGraph(route.Nodes) > maxRange {
				continue
			}
			merged = append(merged, route)
		}
	}
	return merged
}

// countCitiesNoGraph counts CityNode IDs within a merged node list without
// needing the routegraph.Graph: every node ID routeenum ever sees is
// prefixed "C|" for a city or "J|" for a junction (routegraph.CityNode.ID
// / JunctionNode.ID), so the prefix alone resolves the kind.
func countCitiesNoGraph(nodes []string) int {
	n := 0
	for _, id := range nodes {
		if len(id) > 0 && id[0] == 'C' {
			n++
		}
	}
	return n
}

func reverseEdges(in []routegraph.Edge) []routegraph.Edge {
	out := make([]routegraph.Edge, len(in))
	for i, e := range in {
		out[len(in)-1-i] = e
	}
	return out
}
