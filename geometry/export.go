// File: export.go
// Role: an optional SVG snapshot of a placed board, for `route18xx map
// svg` (spec.md §4.1's "geometry for rendering is out of core but has a
// deterministic contract"). Grounded on dshills-dungo's
// pkg/export/svg.go: a bytes.Buffer canvas, svg.Start/End bracketing,
// one drawing pass per concern (background, track, settlements,
// labels).
package geometry

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/railtopo/route18xx/board"
	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/tile"
)

// DefaultHexSize matches original_source/core/hex.py's module-level
// SIZE constant.
const DefaultHexSize = 50.0

// ExportOptions configures the SVG snapshot.
type ExportOptions struct {
	HexSize    float64 // pixel radius per hex; 0 defaults to DefaultHexSize
	ShowLabels bool    // draw tile IDs under each hex center
}

// ExportSVG renders b as an SVG document: one hex outline per playable
// cell, one line per track exit, and a circle per City settlement sized
// by capacity.
func ExportSVG(b *board.Board, opts ExportOptions) ([]byte, error) {
	if opts.HexSize <= 0 {
		opts.HexSize = DefaultHexSize
	}

	hexes := b.Hexes()
	if len(hexes) == 0 {
		return nil, fmt.Errorf("geometry: board has no hexes")
	}

	minX, minY, maxX, maxY := boundingBox(hexes, opts.HexSize)
	margin := opts.HexSize
	width := int(maxX-minX+2*margin) + 1
	height := int(maxY-minY+2*margin) + 1
	offsetX, offsetY := margin-minX, margin-minY

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	b.Each(func(h hexcoord.Hex, t *tile.Tile) {
		drawHex(canvas, h, t, opts.HexSize, offsetX, offsetY, opts.ShowLabels)
	})

	canvas.End()
	return buf.Bytes(), nil
}

func boundingBox(hexes []hexcoord.Hex, size float64) (minX, minY, maxX, maxY float64) {
	for i, h := range hexes {
		corners := Corners(h, size)
		for _, c := range corners {
			if i == 0 {
				minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			}
			if c.X < minX {
				minX = c.X
			}
			if c.X > maxX {
				maxX = c.X
			}
			if c.Y < minY {
				minY = c.Y
			}
			if c.Y > maxY {
				maxY = c.Y
			}
		}
	}
	return
}

func drawHex(canvas *svg.SVG, h hexcoord.Hex, t *tile.Tile, size, offsetX, offsetY float64, showLabels bool) {
	corners := Corners(h, size)
	xs := make([]int, 6)
	ys := make([]int, 6)
	for i, c := range corners {
		xs[i] = int(c.X + offsetX)
		ys[i] = int(c.Y + offsetY)
	}
	canvas.Polygon(xs, ys, "fill:none;stroke:#888;stroke-width:1")

	center := Center(h, size)
	cx, cy := int(center.X+offsetX), int(center.Y+offsetY)

	for _, seg := range t.Segments {
		for _, d := range seg.ExitSet() {
			mid := Midpoints(h, size)[d]
			canvas.Line(cx, cy, int(mid.X+offsetX), int(mid.Y+offsetY), "stroke:black;stroke-width:2")
		}
		if seg.HasSettlement() {
			pt := SlotPoint(h, size, seg.Slot)
			px, py := int(pt.X+offsetX), int(pt.Y+offsetY)
			switch s := seg.Settlement.(type) {
			case *tile.City:
				canvas.Circle(px, py, int(size/4), fmt.Sprintf("fill:white;stroke:black;stroke-width:2;data-capacity:%d", s.Capacity))
			case tile.Town:
				canvas.Circle(px, py, int(size/8), "fill:black")
			case tile.Offboard:
				canvas.Rect(px-int(size/6), py-int(size/6), int(size/3), int(size/3), "fill:#ccc;stroke:black")
			}
		}
	}

	if showLabels {
		canvas.Text(cx, cy+int(size/2), t.ID, "text-anchor:middle;font-size:10px")
	}
}
