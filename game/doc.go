// Package game ties a Catalog to a Board, Bank, and Railway roster into
// the single aggregate value original_source/core/game.py's Game class
// held as one process-wide object (spec.md §9's "Global mutation by
// __init__-on-existing-object (to reset state) becomes an explicit
// Game::reset(year) that returns a fresh Game"): every mutator here except
// LoadSave goes through rules.Engine (LoadSave applies a save document
// through ioformats.LoadSave), and Reset rebuilds a fresh Game from the same
// source documents rather than mutating one shared instance in place.
package game
