// Package hexcoord implements cube-coordinate hex grid arithmetic: the
// six track/neighbor directions, doubled-coordinate ("A1"-style) parsing,
// and rotation of a direction by a tile's rotation count.
//
// A Hex is a cube coordinate (Q, R, S) with Q+R+S == 0. Directions are
// ordered N, NE, SE, S, SW, NW (clockwise from due north), matching the
// six edges of a flat-top hex tile.
package hexcoord
