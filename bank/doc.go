// Package bank tracks the finite supply of tiles and trains available
// to be placed or bought (spec.md §3, grounded on
// original_source/core/bank.py). Mutation is restricted to TakeTile,
// TakeTrain and RustTrains, called by the rules package, and RestoreFrom,
// called by ioformats when loading a save.
package bank
