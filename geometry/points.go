package geometry

import (
	"math"

	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/tile"
)

// Point is a 2D pixel coordinate.
type Point struct {
	X, Y float64
}

// Lerp returns the point a fraction t of the way from a to b, per
// original_source/gui/helpers.py's lerp used throughout hex.py.
func Lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Center returns the pixel center of h for a flat-top hex grid of the
// given size, ported from original_source/core/hex.py's Hex.center.
func Center(h hexcoord.Hex, size float64) Point {
	q, r := float64(h.Q), float64(h.R)
	return Point{
		X: size * (3.0 / 2.0 * q),
		Y: size * (math.Sqrt(3)/2*q + math.Sqrt(3)*r),
	}
}

// Corners returns h's six corner points, 0th index the first corner
// clockwise from midnight, per original_source/core/hex.py's
// Hex.corners.
func Corners(h hexcoord.Hex, size float64) [6]Point {
	c := Center(h, size)
	var out [6]Point
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i-1)
		out[i] = Point{X: c.X + size*math.Cos(angle), Y: c.Y + size*math.Sin(angle)}
	}
	return out
}

// Midpoints returns the midpoint of each of h's six edges, 0th index the
// upper edge, going clockwise, per original_source/core/hex.py's
// Hex.midpoints.
func Midpoints(h hexcoord.Hex, size float64) [6]Point {
	corners := Corners(h, size)
	var out [6]Point
	for i := 0; i < 6; i++ {
		prev := ((i-1)%6 + 6) % 6
		out[i] = Lerp(corners[i], corners[prev], 0.5)
	}
	return out
}

// CityPoints returns the seven settlement-anchor points on h: index 0 is
// the center (SlotC), indices 1..6 are R1..R6, each the midpoint between
// an edge midpoint and the center, per original_source/core/hex.py's
// Hex.citypoints.
func CityPoints(h hexcoord.Hex, size float64) [7]Point {
	c := Center(h, size)
	mids := Midpoints(h, size)
	var out [7]Point
	out[0] = c
	for i := 0; i < 6; i++ {
		out[i+1] = Lerp(mids[i], c, 0.5)
	}
	return out
}

// SlotPoint returns the pixel anchor for a single settlement slot on h.
func SlotPoint(h hexcoord.Hex, size float64, slot tile.SettlementSlot) Point {
	pts := CityPoints(h, size)
	if slot == tile.SlotC {
		return pts[0]
	}
	return pts[1+int(slot-tile.SlotR1)]
}
