// Package ioformats decodes and encodes the five wire formats spec.md §6
// names (tile catalog, train catalog, board layout, bank manifest, save
// file) using github.com/goccy/go-json as a drop-in faster replacement
// for encoding/json, the way AKJUS-bsc-erigon uses it at scale.
//
// Every Load* function here is a pure translation from a JSON shape into
// this module's domain types (tile.Tile, catalog.Catalog, board.Board,
// bank.Bank, railway.Railway); none of them apply game rules — rule
// checking is rules.Engine's job. A malformed document fails with
// railerr.InvalidArgument per spec.md §7's "input error: malformed
// catalog/board/save JSON: reported at load, not recoverable".
package ioformats
