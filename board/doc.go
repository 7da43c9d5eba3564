// Package board maps hex coordinates to the currently placed tile, the
// single piece of mutable map state every other package reads (spec.md
// §4.3, grounded on original_source/core/board.py's shape-driven
// constructor). Station membership is not board's own state — it lives
// inside a placed tile's City segments and mutates through that tile's
// Instantiate'd settlement, in place.
package board
