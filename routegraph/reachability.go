package routegraph

import (
	"github.com/railtopo/route18xx/bfs"
)

// ReachableFromHomes returns every node ID reachable from any of g's home
// nodes, by running one unweighted bfs.BFS walk per home and unioning
// the visited sets. This is the connectivity check spec.md §8's
// "RouteGraph is a function of Board+Railway: rebuilding produces an
// isomorphic structure" round-trip test relies on, and it doubles as the
// admission check routeenum uses before walking a graph with no reachable
// cities at all.
func (g *Graph) ReachableFromHomes() (map[string]bool, error) {
	out := make(map[string]bool)
	for _, home := range g.Homes {
		out[home] = true
		res, err := bfs.BFS(g.Core, home)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			out[id] = true
		}
	}
	return out, nil
}
