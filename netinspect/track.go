// File: track.go
// Role: a coarse, railway-agnostic view of board connectivity for
// diagnostics: one vertex per hex, one unit-weight edge per pair of
// hexes joined by any printed track exit. This intentionally ignores
// which settlement slot or segment carries the connection (routegraph
// is the precise, railway-specific view); here we only ask "is the
// printed map itself one connected piece of track."
package netinspect

import (
	"errors"

	"github.com/railtopo/route18xx/board"
	"github.com/railtopo/route18xx/core"
	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/tile"
)

// TrackGraph builds the undirected, unit-weight hex-adjacency graph for
// every playable hex on b that carries at least one track exit.
func TrackGraph(b *board.Board) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	b.Each(func(h hexcoord.Hex, t *tile.Tile) {
		_ = g.AddVertex(h.String())
		for _, seg := range t.Segments {
			for _, d := range seg.ExitSet() {
				neighbor := h.Neighbor(d)
				if !b.Has(neighbor) {
					continue
				}
				if _, err := g.AddEdge(h.String(), neighbor.String(), 1); err != nil &&
					!errors.Is(err, core.ErrMultiEdgeNotAllowed) {
					// Any other failure (bad weight, loop) would indicate a
					// programming error in this package, not a board defect;
					// track construction never legitimately produces one.
					panic("netinspect: unexpected TrackGraph AddEdge failure: " + err.Error())
				}
			}
		}
	})
	return g
}
