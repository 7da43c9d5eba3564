package catalog

// Train is a train card: how far it may travel and whether it has
// unlimited range (spec.md §3). Train.ID doubles as the id of the Phase
// it introduces (original_source/core/train.py).
type Train struct {
	ID     string
	Range  int // ignored when Diesel is set
	Diesel bool
}

// EffectiveRange returns t's working range for route-length comparisons:
// a large sentinel for diesels (spec.md §4.6's "diesels use a large
// sentinel, e.g., 30"), otherwise t.Range.
func (t Train) EffectiveRange() int {
	if t.Diesel {
		return DieselRangeSentinel
	}
	return t.Range
}

// DieselRangeSentinel stands in for "infinite range" in bounded search
// loops (route enumeration, train/route feasibility checks).
const DieselRangeSentinel = 30
