package routegraph

import (
	"fmt"

	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/tile"
)

// Node is either a CityNode or a JunctionNode (spec.md §3). Both are
// plain values; ID is their core.Graph vertex identifier.
type Node interface {
	ID() string
	isNode()
}

// CityNode is a settlement slot on a specific hex.
type CityNode struct {
	Hex  hexcoord.Hex
	Slot tile.SettlementSlot
}

func (c CityNode) ID() string { return fmt.Sprintf("C|%s|%d", c.Hex, c.Slot) }
func (CityNode) isNode()      {}

// JunctionNode is the shared point on the edge between two adjacent
// hexes; HexA/HexB are canonicalized so {h1,h2} and {h2,h1} produce the
// same node (spec.md §3's "junction nodes canonicalize their hex pair by
// a total ordering").
type JunctionNode struct {
	HexA, HexB hexcoord.Hex
}

// NewJunctionNode builds the canonical JunctionNode for the unordered
// pair {h1, h2}.
func NewJunctionNode(h1, h2 hexcoord.Hex) JunctionNode {
	if h1.String() > h2.String() {
		h1, h2 = h2, h1
	}
	return JunctionNode{HexA: h1, HexB: h2}
}

func (j JunctionNode) ID() string { return fmt.Sprintf("J|%s|%s", j.HexA, j.HexB) }
func (JunctionNode) isNode()      {}

// Edge is the domain view of a core.Graph edge: the two node IDs it
// connects and the hex it physically traverses (spec.md §3). Multiple
// Edges may connect the same node pair through distinct hexes.
type Edge struct {
	CoreID string
	A, B   string
	Hex    hexcoord.Hex
}

// OtherEnd returns the node ID at the far end of e from nodeID.
func (e Edge) OtherEnd(nodeID string) string {
	if e.A == nodeID {
		return e.B
	}
	return e.A
}
