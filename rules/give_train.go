package rules

import (
	"fmt"
	"sort"

	"github.com/railtopo/route18xx/catalog"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/railway"
)

// GiveTrain validates and applies buying trainID for railwayID (spec.md
// §4.4): the railway must be under its phase limit; the bank must have a
// copy; and if trainID belongs to a later phase than the current one,
// the phase advances, cascading rust through every intermediate phase
// and then trimming every railway down to the new limit if needed.
func (e *Engine) GiveTrain(trainID, railwayID string) error {
	r := e.railwayOrPanic(railwayID)

	if len(r.Trains) == e.Phase.Limit {
		return railerr.Rule(fmt.Sprintf("rules: railway %s is at its train limit", railwayID))
	}
	if err := e.Bank.TakeTrain(trainID); err != nil {
		return err
	}
	r.Trains = append(r.Trains, trainID)

	newPhase, err := e.Catalog.PhaseByID(trainID)
	if err != nil {
		// trainID does not introduce a phase of its own; no advance.
		return nil
	}
	newRank, _ := e.Catalog.PhaseRank(newPhase.ID)
	curRank, _ := e.Catalog.PhaseRank(e.Phase.ID)
	if newRank > curRank {
		return e.advancePhase(newPhase)
	}
	return nil
}

// advancePhase walks every intermediate phase between the current one
// and to in declaration order, rusting as it goes, then trims every
// railway down to to's train limit (spec.md §4.4).
func (e *Engine) advancePhase(to catalog.Phase) error {
	between, err := e.Catalog.PhasesBetween(e.Phase, to)
	if err != nil {
		return err
	}
	for _, x := range between {
		if x.Rusts == "" {
			continue
		}
		e.Bank.RustTrains(x.Rusts)
		rusted := map[string]bool{x.Rusts: true}
		for _, r := range e.Railways {
			r.RemoveTrains(rusted)
		}
	}
	e.Phase = to
	for _, r := range e.Railways {
		e.trimToLimit(r)
	}
	return nil
}

// trimToLimit keeps only r's e.Phase.Limit strongest trains, sorted by
// phase rank descending (spec.md §4.4's "keep the strongest limit trains
// (sorted by phase rank descending)").
func (e *Engine) trimToLimit(r *railway.Railway) {
	if len(r.Trains) <= e.Phase.Limit {
		return
	}
	trains := append([]string(nil), r.Trains...)
	sort.SliceStable(trains, func(i, j int) bool {
		ri, _ := e.Catalog.PhaseRank(trains[i])
		rj, _ := e.Catalog.PhaseRank(trains[j])
		return ri > rj
	})
	r.Trains = trains[:e.Phase.Limit]
}
