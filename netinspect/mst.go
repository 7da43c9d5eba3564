// File: mst.go
// Role: the "is this board one connected piece of track" report, backed
// directly by prim_kruskal.Kruskal (spec.md's DOMAIN STACK wiring for
// this package).
package netinspect

import (
	"github.com/railtopo/route18xx/board"
	"github.com/railtopo/route18xx/core"
	"github.com/railtopo/route18xx/prim_kruskal"
)

// SpanningTreeReport summarizes TrackGraph(b)'s minimum spanning tree.
type SpanningTreeReport struct {
	HexCount    int         // total hexes carrying track
	Connected   bool        // whether every hex reaches every other
	Edges       []core.Edge // MST edges when Connected; nil otherwise
	TotalWeight int64
}

// SpanningTree runs Kruskal's algorithm over b's track-adjacency graph.
// A disconnected board (ErrDisconnected) is reported, not treated as a
// failure: a map under construction is routinely disconnected, and
// callers (the CLI's "map mst" command) want that fact surfaced, not an
// error returned.
func SpanningTree(b *board.Board) (*SpanningTreeReport, error) {
	g := TrackGraph(b)
	report := &SpanningTreeReport{HexCount: len(g.Vertices())}

	if report.HexCount <= 1 {
		report.Connected = true
		return report, nil
	}

	edges, weight, err := prim_kruskal.Kruskal(g)
	if err != nil {
		if err == prim_kruskal.ErrDisconnected {
			return report, nil
		}
		return nil, err
	}
	report.Connected = true
	report.Edges = edges
	report.TotalWeight = weight
	return report, nil
}
