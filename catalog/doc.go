// Package catalog holds the per-game, read-only rule tables: the
// ordered Phase table, the Train roster, and the Catalog value that
// binds them together with the tile manifest (spec.md §3/§4.4, §9's
// "replace the process-wide Database singleton with an explicit
// read-only Catalog value passed into constructors").
package catalog
