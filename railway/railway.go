package railway

import "github.com/railtopo/route18xx/hexcoord"

// Railway is one operating company. Board owns its Tiles and each City
// segment owns its own station list; Railway only owns its train list
// and station-token counter, with company membership inside a City
// acting as a weak cross-reference back to this value's ID (spec.md §3).
type Railway struct {
	ID               string
	Name             string
	Home             hexcoord.Hex
	Color            string
	Trains           []string // catalog train ids, in acquisition order
	StationsRemaining int
	Floated          bool
}

// HasTrain reports whether r currently holds a train of the given id.
func (r *Railway) HasTrain(trainID string) bool {
	for _, id := range r.Trains {
		if id == trainID {
			return true
		}
	}
	return false
}

// RemoveTrains drops every held train whose id is in rustedIDs, in
// place, preserving the relative order of survivors.
func (r *Railway) RemoveTrains(rustedIDs map[string]bool) {
	kept := r.Trains[:0]
	for _, id := range r.Trains {
		if !rustedIDs[id] {
			kept = append(kept, id)
		}
	}
	r.Trains = kept
}
