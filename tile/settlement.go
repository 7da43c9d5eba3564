package tile

// SettlementSlot identifies where on a tile a settlement lives: the
// center ("C", used by Lawson-style town/city-in-the-middle tiles) or
// one of six revenue-center positions R1..R6 (spec.md §3).
type SettlementSlot int

const (
	SlotC SettlementSlot = iota
	SlotR1
	SlotR2
	SlotR3
	SlotR4
	SlotR5
	SlotR6
)

// Rotate returns the slot rotated by k steps. SlotC is fixed under
// rotation; R1..R6 cycle by k modulo 6, per spec.md §3.
func (s SettlementSlot) Rotate(k int) SettlementSlot {
	if s == SlotC {
		return SlotC
	}
	// R1..R6 map to 0..5 for the modular cycle, then back to R1..R6.
	idx := int(s-SlotR1+SettlementSlot(k))
	idx = ((idx % 6) + 6) % 6
	return SlotR1 + SettlementSlot(idx)
}

// Settlement is a revenue center: a Town, a City, or an Offboard
// location (spec.md §3). Revenue is total for any (trainID, phaseColor)
// pair on every variant.
type Settlement interface {
	// Revenue returns the amount earned by a train of trainID passing
	// through this settlement while the board is in phaseColor.
	Revenue(trainID string, phaseColor Color) int
}

// Town is a fixed-revenue settlement that can never hold a station.
type Town struct {
	Value int
}

// Revenue implements Settlement; a Town's revenue never depends on the
// train or phase.
func (t Town) Revenue(string, Color) int { return t.Value }

// City is a fixed-revenue settlement that can hold up to Capacity
// stations. Stations is mutated in place by rules.PlaceStation; City is
// meant to be referenced through a pointer (a "handle" per spec.md §9)
// so station placement never requires cloning the owning Board.
type City struct {
	Value    int
	Capacity int
	Stations []string // company (railway) ids, in placement order
}

// Revenue implements Settlement; a City's revenue never depends on the
// train or phase (original_source/core/settlement.py's City.revenue).
func (c *City) Revenue(string, Color) int { return c.Value }

// IsBlockingFor reports whether this City blocks railwayID: full and not
// already hosting railwayID's own station. Per spec.md §9(c), a
// railway's own station-bearing city is never blocking for that railway,
// even when full.
func (c *City) IsBlockingFor(railwayID string) bool {
	if len(c.Stations) < c.Capacity {
		return false
	}
	for _, id := range c.Stations {
		if id == railwayID {
			return false
		}
	}
	return true
}

// HasStation reports whether railwayID already holds a station in c.
func (c *City) HasStation(railwayID string) bool {
	for _, id := range c.Stations {
		if id == railwayID {
			return true
		}
	}
	return false
}

// Offboard is a map-edge settlement whose revenue depends on the current
// phase color, with optional per-train overrides (spec.md §3's
// "Offboard... revenue is a mapping from phase-color to integer plus
// per-train overrides", supplementing the TODO left in
// original_source/core/settlement.py).
type Offboard struct {
	ByColor   map[Color]int
	Overrides map[string]int // trainID -> revenue, takes precedence over ByColor
}

// Revenue implements Settlement: a per-train override wins if present,
// otherwise the value is looked up by phaseColor (missing entries score 0).
func (o Offboard) Revenue(trainID string, phaseColor Color) int {
	if o.Overrides != nil {
		if v, ok := o.Overrides[trainID]; ok {
			return v
		}
	}
	return o.ByColor[phaseColor]
}
