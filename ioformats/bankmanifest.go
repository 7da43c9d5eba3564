// File: bankmanifest.go
// Role: decodes the bank manifest wire format of spec.md §6 —
// `{tiles: {id: count}, trains: {id: count}}`.
package ioformats

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/railtopo/route18xx/bank"
	"github.com/railtopo/route18xx/railerr"
)

type rawBankManifest struct {
	Tiles  map[string]int `json:"tiles,omitempty"`
	Trains map[string]int `json:"trains,omitempty"`
}

// LoadBankManifest decodes a bank manifest document into a *bank.Bank.
func LoadBankManifest(data []byte) (*bank.Bank, error) {
	var raw rawBankManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, railerr.InvalidArgument(fmt.Sprintf("ioformats: malformed bank manifest: %v", err))
	}
	return bank.New(raw.Tiles, raw.Trains), nil
}
