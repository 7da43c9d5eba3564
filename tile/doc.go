// Package tile implements the immutable tile model of spec.md §3/§4.2:
// colors, settlement slots, settlements (Town/City/Offboard), segments,
// and the Tile template itself with rotation and topology-preservation
// checks used by the placement rules.
//
// Every exported method here is pure: rotation, matching, and slot
// lookups never mutate the receiver. The single mutable piece of state
// in the tile model is a City's station list, which is mutated in place
// through a *City handle (design note in spec.md §9: "Segment as a
// value and City as a handle/index into an owning arena").
package tile
