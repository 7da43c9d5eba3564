package bank

import (
	"fmt"
	"strings"
	"sync"

	"github.com/railtopo/route18xx/railerr"
)

// Bank holds the remaining count of each tile and train id. Counts are
// never negative; TakeTile/TakeTrain fail RuleError instead of going
// below zero (spec.md §8's "bank counts are non-negative" invariant).
type Bank struct {
	mu     sync.Mutex
	tiles  map[string]int
	trains map[string]int
}

// New builds a Bank from manifest counts. The maps are copied so the
// caller's originals are never aliased into mutable bank state.
func New(tiles, trains map[string]int) *Bank {
	b := &Bank{tiles: make(map[string]int, len(tiles)), trains: make(map[string]int, len(trains))}
	for id, n := range tiles {
		b.tiles[id] = n
	}
	for id, n := range trains {
		b.trains[id] = n
	}
	return b
}

// isDebugTile reports whether tileID is exempt from bank bookkeeping,
// mirroring original_source/core/bank.py's take_tile special-case for
// ids prefixed "DBG" (scratch tiles used while authoring board layouts).
func isDebugTile(tileID string) bool {
	return strings.HasPrefix(tileID, "DBG")
}

// TakeTile deducts one copy of tileID, unless tileID is a debug tile.
func (b *Bank) TakeTile(tileID string) error {
	if isDebugTile(tileID) {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tiles[tileID] <= 0 {
		return railerr.Rule(fmt.Sprintf("bank: no more copies of tile %q", tileID))
	}
	b.tiles[tileID]--
	return nil
}

// TakeTrain deducts one copy of trainID.
func (b *Bank) TakeTrain(trainID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.trains[trainID] <= 0 {
		return railerr.Rule(fmt.Sprintf("bank: no more copies of train %q", trainID))
	}
	b.trains[trainID]--
	return nil
}

// RustTrains zeroes the bank count for every id in trainIDs, per
// spec.md §4.4's rust handling ("set bank count of that id to zero").
func (b *Bank) RustTrains(trainIDs ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, id := range trainIDs {
		b.trains[id] = 0
	}
}

// TileCount returns the remaining bank count for tileID.
func (b *Bank) TileCount(tileID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tiles[tileID]
}

// TrainCount returns the remaining bank count for trainID.
func (b *Bank) TrainCount(trainID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trains[trainID]
}

// Snapshot returns a copy of the current tile bank counts, for
// ioformats.SaveGame's "bank" field (spec.md §8's save/load round-trip
// law on bank counts).
func (b *Bank) Snapshot() map[string]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]int, len(b.tiles))
	for id, n := range b.tiles {
		out[id] = n
	}
	return out
}

// TrainSnapshot returns a copy of the current train bank counts.
func (b *Bank) TrainSnapshot() map[string]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]int, len(b.trains))
	for id, n := range b.trains {
		out[id] = n
	}
	return out
}

// RestoreFrom overwrites b's tile and train counts from a prior
// Snapshot (or an equivalent bank manifest), for ioformats.LoadSave.
func (b *Bank) RestoreFrom(tiles, trains map[string]int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, n := range tiles {
		b.tiles[id] = n
	}
	for id, n := range trains {
		b.trains[id] = n
	}
}
