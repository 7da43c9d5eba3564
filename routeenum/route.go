package routeenum

import (
	"sort"
	"strings"

	"github.com/railtopo/route18xx/routegraph"
)

// Route is a city-to-city walk: an alternating sequence of nodes and the
// edges connecting consecutive nodes, starting and ending at a CityNode
// (spec.md §3).
type Route struct {
	Nodes []string          // node IDs, City/Junction alternating
	Edges []routegraph.Edge // len(Edges) == len(Nodes)-1
}

// Length is the number of CityNodes along the route (spec.md §3).
func (r Route) Length(g *routegraph.Graph) int {
	n := 0
	for _, id := range r.Nodes {
		if g.IsCity(id) {
			n++
		}
	}
	return n
}

// Cities returns the distinct CityNode values visited by r, in walk order.
func (r Route) Cities(g *routegraph.Graph) []routegraph.CityNode {
	out := make([]routegraph.CityNode, 0, len(r.Nodes))
	for _, id := range r.Nodes {
		if cn, ok := g.Cities[id]; ok {
			out = append(out, cn)
		}
	}
	return out
}

// EdgeIDs returns the core.Graph edge IDs r traverses, for the
// cross-train edge-disjointness check in assign.
func (r Route) EdgeIDs() []string {
	out := make([]string, len(r.Edges))
	for i, e := range r.Edges {
		out[i] = e.CoreID
	}
	return out
}

// HasSubtour reports whether r repeats any node or edge (spec.md §3).
// The enumerator never produces one, but this is the law spec.md §8
// asks implementations to be able to check.
func (r Route) HasSubtour() bool {
	seenNodes := make(map[string]bool, len(r.Nodes))
	for _, id := range r.Nodes {
		if seenNodes[id] {
			return true
		}
		seenNodes[id] = true
	}
	seenEdges := make(map[string]bool, len(r.Edges))
	for _, e := range r.Edges {
		if seenEdges[e.CoreID] {
			return true
		}
		seenEdges[e.CoreID] = true
	}
	return false
}

// Canonical returns the encoding of r, choosing the lexicographically
// smaller of the forward and reverse node sequences, so that two Routes
// equal up to reversal compare equal (spec.md §3's "canonical form =
// min of forward/reverse string encodings").
func (r Route) Canonical() string {
	fwd := strings.Join(r.Nodes, ">")
	rev := strings.Join(reversed(r.Nodes), ">")
	if rev < fwd {
		return rev
	}
	return fwd
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// dedupeByCanonical removes Routes that are equal up to reversal,
// keeping the first occurrence, then returns the survivors sorted by
// canonical form for deterministic output.
func dedupeByCanonical(routes []Route) []Route {
	seen := make(map[string]bool, len(routes))
	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		c := r.Canonical()
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Canonical() < out[j].Canonical() })
	return out
}
