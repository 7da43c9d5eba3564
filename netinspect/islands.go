// File: islands.go
// Role: a coarse, orthogonal-grid view of the board's playable
// footprint, using lvlath/gridgraph's ConnectedComponents over the
// doubled-coordinate grid a hex board already lives on (hexcoord.Hex's
// Doubled/FromDoubled). This is intentionally approximate: four of the
// six hex directions (NE/SE/SW/NW) land exactly on gridgraph's 8-way
// diagonal offsets, but N/S steps two rows in doubled coordinates, which
// an 8-connected grid does not reach directly. A north-south-only chain
// of hexes can therefore read as several islands here even when
// TrackGraph/SpanningTree sees it as one connected piece — this package
// is a cheap pre-solve smell test, not a substitute for SpanningTree.
package netinspect

import (
	"github.com/railtopo/route18xx/board"
	"github.com/railtopo/route18xx/gridgraph"
	"github.com/railtopo/route18xx/hexcoord"
)

// Island is one 8-way connected group of playable hexes on the
// doubled-coordinate grid.
type Island struct {
	Hexes []hexcoord.Hex
}

// ConnectedIslands partitions b's playable hexes into groups that are
// 8-way connected on the doubled-coordinate grid. A board with a single
// Island has no stray, unreachable cells; more than one is either a
// layout bug or hexes joined only by N/S steps (see the file comment).
func ConnectedIslands(b *board.Board) ([]Island, error) {
	hexes := b.Hexes()
	if len(hexes) == 0 {
		return nil, nil
	}

	minCol, minRow, maxCol, maxRow := 0, 0, 0, 0
	type coord struct{ col, row int }
	coords := make(map[hexcoord.Hex]coord, len(hexes))
	for i, h := range hexes {
		col, row := h.Doubled()
		coords[h] = coord{col, row}
		if i == 0 {
			minCol, maxCol, minRow, maxRow = col, col, row, row
			continue
		}
		if col < minCol {
			minCol = col
		}
		if col > maxCol {
			maxCol = col
		}
		if row < minRow {
			minRow = row
		}
		if row > maxRow {
			maxRow = row
		}
	}

	width, height := maxCol-minCol+1, maxRow-minRow+1
	grid := make([][]int, height)
	for y := range grid {
		grid[y] = make([]int, width)
	}
	hexAt := make(map[[2]int]hexcoord.Hex, len(hexes))
	for _, h := range hexes {
		c := coords[h]
		x, y := c.col-minCol, c.row-minRow
		grid[y][x] = 1
		hexAt[[2]int{x, y}] = h
	}

	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn8})
	if err != nil {
		return nil, err
	}

	components := gg.ConnectedComponents()
	var islands []Island
	for _, groups := range components {
		for _, cells := range groups {
			hexesIn := make([]hexcoord.Hex, len(cells))
			for i, c := range cells {
				hexesIn[i] = hexAt[[2]int{c.X, c.Y}]
			}
			islands = append(islands, Island{Hexes: hexesIn})
		}
	}
	return islands, nil
}
