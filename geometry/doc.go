// Package geometry turns a Hex into the pixel coordinates a renderer
// needs: a center, the six corners, the six edge midpoints, and the
// seven settlement-slot points a tile's segments anchor to. These are
// pure functions of a Hex and a fixed hex size, ported from
// original_source/core/hex.py's Hex.center/corners/midpoints/citypoints
// (spec.md §4.1: "geometry for rendering is out of core but has a
// deterministic contract").
//
// Export builds on this contract with an optional SVG snapshot of a
// board, grounded on dshills-dungo's pkg/export/svg.go use of
// github.com/ajstarks/svgo.
package geometry
