// File: build.go
// Role: breadth-first construction of the city/junction multigraph from
// a Board and a Railway's station placements, grounded on
// original_source/solver/pathfinder.py's _build_graph/_process_city/
// _process_junction and stored in a lvlath/core.Graph (mixed/multi/loop
// mode) rather than a bespoke adjacency structure (spec.md §4.5).
package routegraph

import (
	"fmt"

	"github.com/railtopo/route18xx/core"
	"github.com/railtopo/route18xx/board"
	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/railway"
	"github.com/railtopo/route18xx/tile"
)

// Graph is the derived multigraph for one railway over one board
// snapshot. It is never mutated after Build returns; a board or railway
// mutation requires a fresh Build call (spec.md §3).
type Graph struct {
	Core      *core.Graph
	Cities    map[string]CityNode
	Junctions map[string]JunctionNode
	Edges     map[string]Edge // core edge ID -> Edge
	Homes     []string        // home CityNode IDs, in a deterministic order

	board    *board.Board
	railwayID string
}

// SettlementAt resolves the settlement anchored by a CityNode, for
// revenue lookups during assignment.
func (g *Graph) SettlementAt(cn CityNode) (tile.Settlement, error) {
	return g.board.SettlementAt(cn.Hex, cn.Slot)
}

// IsCity reports whether id names a CityNode in g.
func (g *Graph) IsCity(id string) bool { _, ok := g.Cities[id]; return ok }

// IsHome reports whether id is one of the railway's home nodes.
func (g *Graph) IsHome(id string) bool {
	for _, h := range g.Homes {
		if h == id {
			return true
		}
	}
	return false
}

// NodeEdges returns every Edge incident to nodeID.
func (g *Graph) NodeEdges(nodeID string) ([]Edge, error) {
	neighbors, err := g.Core.Neighbors(nodeID)
	if err != nil {
		return nil, err
	}
	out := make([]Edge, 0, len(neighbors))
	for _, e := range neighbors {
		out = append(out, g.Edges[e.ID])
	}
	return out, nil
}

// IsBlocking reports whether the settlement at a CityNode blocks
// railwayID from passing through (spec.md §4.5/§9(c)): a full City not
// owned by railwayID. Non-City settlements and nodes with no station
// list never block.
func (g *Graph) IsBlocking(cn CityNode) (bool, error) {
	settlement, err := g.board.SettlementAt(cn.Hex, cn.Slot)
	if err != nil {
		return false, err
	}
	city, ok := settlement.(*tile.City)
	if !ok {
		return false, nil
	}
	return city.IsBlockingFor(g.railwayID), nil
}

type frontierItem struct {
	id   string
	node Node
}

// Build constructs the RouteGraph for r over b, following spec.md §4.5's
// breadth-first expansion exactly: home stations seed the frontier,
// cities fan out through their exits into junctions, and junctions fan
// out through each of their two hex sides into neighboring cities or
// further junctions.
func Build(b *board.Board, r *railway.Railway) (*Graph, error) {
	g := &Graph{
		Core:      core.NewGraph(core.WithMultiEdges(), core.WithLoops()),
		Cities:    make(map[string]CityNode),
		Junctions: make(map[string]JunctionNode),
		Edges:     make(map[string]Edge),
		board:     b,
		railwayID: r.ID,
	}

	var queue []frontierItem
	b.Each(func(h hexcoord.Hex, t *tile.Tile) {
		slot, err := t.GetStationSlot(r.ID)
		if err != nil {
			return
		}
		cn := CityNode{Hex: h, Slot: slot}
		g.Cities[cn.ID()] = cn
		g.Homes = append(g.Homes, cn.ID())
		queue = append(queue, frontierItem{id: cn.ID(), node: cn})
	})

	visited := make(map[string]bool)
	seenPhysical := make(map[string]bool)

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		switch n := item.node.(type) {
		case CityNode:
			g.Cities[n.ID()] = n
			blocking, err := g.IsBlocking(n)
			if err != nil {
				return nil, err
			}
			if blocking {
				continue
			}
			seg, err := b.SegmentAt(n.Hex, n.Slot)
			if err != nil {
				return nil, err
			}
			for _, d := range seg.ExitSet() {
				jn := NewJunctionNode(n.Hex, n.Hex.Neighbor(d))
				g.addEdge(n, jn, n.Hex, seenPhysical)
				if !visited[jn.ID()] {
					queue = append(queue, frontierItem{id: jn.ID(), node: jn})
				}
			}
		case JunctionNode:
			g.Junctions[n.ID()] = n
			for _, base := range [2]hexcoord.Hex{n.HexA, n.HexB} {
				other := n.HexA
				if base == n.HexA {
					other = n.HexB
				}
				entryDir, err := hexcoord.DirectionFrom(other.Sub(base))
				if err != nil {
					railerr.Internal(fmt.Sprintf("routegraph: junction hexes %v/%v are not adjacent", n.HexA, n.HexB))
				}
				t, err := b.TileAt(base)
				if err != nil {
					continue // base is off the playable map; silently skipped per spec.md §7.
				}
				for _, seg := range t.SegmentsWithExit(entryDir) {
					if seg.HasSettlement() {
						cn := CityNode{Hex: base, Slot: seg.Slot}
						g.addEdge(n, cn, base, seenPhysical)
						if !visited[cn.ID()] {
							queue = append(queue, frontierItem{id: cn.ID(), node: cn})
						}
						continue
					}
					for _, e := range seg.ExitSet() {
						if e == entryDir {
							continue
						}
						neighbor := base.Neighbor(e)
						if neighbor == n.HexA || neighbor == n.HexB {
							continue
						}
						newJ := NewJunctionNode(base, neighbor)
						g.addEdge(n, newJ, base, seenPhysical)
						if !visited[newJ.ID()] {
							queue = append(queue, frontierItem{id: newJ.ID(), node: newJ})
						}
					}
				}
			}
		}
	}

	return g, nil
}

// addEdge registers one physical connection between a and b through
// hex, deduplicating the reverse discovery that happens when a junction
// is later expanded from the side that already produced this edge.
func (g *Graph) addEdge(a, b Node, hex hexcoord.Hex, seen map[string]bool) {
	idA, idB := a.ID(), b.ID()
	key := idA + "~" + idB + "@" + hex.String()
	altKey := idB + "~" + idA + "@" + hex.String()
	if seen[key] || seen[altKey] {
		return
	}
	seen[key] = true

	_ = g.Core.AddVertex(idA)
	_ = g.Core.AddVertex(idB)
	if cn, ok := a.(CityNode); ok {
		g.Cities[cn.ID()] = cn
	}
	if jn, ok := a.(JunctionNode); ok {
		g.Junctions[jn.ID()] = jn
	}
	if cn, ok := b.(CityNode); ok {
		g.Cities[cn.ID()] = cn
	}
	if jn, ok := b.(JunctionNode); ok {
		g.Junctions[jn.ID()] = jn
	}

	eid, err := g.Core.AddEdge(idA, idB, 0)
	if err != nil {
		railerr.Internal(fmt.Sprintf("routegraph: AddEdge(%s,%s): %v", idA, idB, err))
	}
	g.Edges[eid] = Edge{CoreID: eid, A: idA, B: idB, Hex: hex}
}
