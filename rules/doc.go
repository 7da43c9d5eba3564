// Package rules is the only place the board, bank, and railway state are
// allowed to mutate: placing a tile, placing a station, and giving a
// train with its cascading phase advance and rust (spec.md §4.4). Every
// operation is transactional at the single-call level — it either
// applies in full or returns an error leaving state untouched.
package rules
