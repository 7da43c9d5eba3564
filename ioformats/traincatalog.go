// File: traincatalog.go
// Role: decodes the train catalog wire format of spec.md §6 — an array
// of `{id, range?, diesel?, phase: {color, limit, rusts?}}` — into both
// a catalog.Train roster and the catalog.Phase table each train
// introduces, in declaration order (catalog.Train.ID doubles as the id
// of the Phase it introduces, per catalog/phase.go).
package ioformats

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/railtopo/route18xx/catalog"
	"github.com/railtopo/route18xx/railerr"
)

type rawTrain struct {
	ID     string   `json:"id"`
	Range  *int     `json:"range,omitempty"`
	Diesel bool     `json:"diesel,omitempty"`
	Phase  rawPhase `json:"phase"`
}

type rawPhase struct {
	Color string `json:"color"`
	Limit int    `json:"limit"`
	Rusts string `json:"rusts,omitempty"`
}

// LoadTrainCatalog decodes a train catalog document into trains (in
// declaration order) and the phase table each train's embedded phase
// object introduces, also in declaration order.
func LoadTrainCatalog(data []byte) ([]catalog.Train, []catalog.Phase, error) {
	var raws []rawTrain
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, nil, railerr.InvalidArgument(fmt.Sprintf("ioformats: malformed train catalog: %v", err))
	}
	trains := make([]catalog.Train, 0, len(raws))
	phases := make([]catalog.Phase, 0, len(raws))
	for _, r := range raws {
		train := catalog.Train{ID: r.ID, Diesel: r.Diesel}
		if r.Range != nil {
			train.Range = *r.Range
		}
		trains = append(trains, train)

		color, err := parseColor(r.Phase.Color)
		if err != nil {
			return nil, nil, err
		}
		phases = append(phases, catalog.Phase{
			ID:    r.ID,
			Color: color,
			Limit: r.Phase.Limit,
			Rusts: r.Phase.Rusts,
		})
	}
	return trains, phases, nil
}
