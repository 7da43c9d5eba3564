package hexcoord_test

import (
	"errors"
	"testing"

	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/railerr"
)

func TestFromString_RoundTrip(t *testing.T) {
	cases := []string{"A1", "B2", "C1", "C3", "AA3", "Z2"}
	for _, s := range cases {
		h, err := hexcoord.FromString(s)
		if err != nil {
			t.Fatalf("FromString(%q): %v", s, err)
		}
		if got := h.String(); got != s {
			t.Fatalf("round trip mismatch: FromString(%q).String() = %q", s, got)
		}
	}
}

func TestFromString_InvariantQRS(t *testing.T) {
	h, err := hexcoord.FromString("C4")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if h.Q+h.R+h.S != 0 {
		t.Fatalf("cube coordinate invariant violated: %+v", h)
	}
}

func TestFromString_Invalid(t *testing.T) {
	for _, s := range []string{"", "1A", "A", "a1", "A-1"} {
		if _, err := hexcoord.FromString(s); !errors.Is(err, railerr.ErrInvalidArgument) {
			t.Fatalf("FromString(%q): expected InvalidArgument, got %v", s, err)
		}
	}
}

func TestNeighbor_SixDirectionsDistinct(t *testing.T) {
	h := hexcoord.Hex{Q: 0, R: 0, S: 0}
	seen := map[hexcoord.Hex]bool{}
	for d := hexcoord.N; d <= hexcoord.NW; d++ {
		n := h.Neighbor(d)
		if seen[n] {
			t.Fatalf("direction %v produced a duplicate neighbor %+v", d, n)
		}
		seen[n] = true
		if n.Q+n.R+n.S != 0 {
			t.Fatalf("neighbor %+v violates cube invariant", n)
		}
	}
}

func TestDirectionFrom_Inverse(t *testing.T) {
	h := hexcoord.Hex{Q: 2, R: -1, S: -1}
	for d := hexcoord.N; d <= hexcoord.NW; d++ {
		n := h.Neighbor(d)
		delta := hexcoord.Hex{Q: n.Q - h.Q, R: n.R - h.R, S: n.S - h.S}
		got, err := hexcoord.DirectionFrom(delta)
		if err != nil {
			t.Fatalf("DirectionFrom: %v", err)
		}
		if got != d {
			t.Fatalf("DirectionFrom(delta for %v) = %v", d, got)
		}
	}
}

func TestDirectionFrom_NotAUnitVector(t *testing.T) {
	_, err := hexcoord.DirectionFrom(hexcoord.Hex{Q: 5, R: 5, S: -10})
	if !errors.Is(err, railerr.ErrInvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestDirection_RotateModular(t *testing.T) {
	if hexcoord.N.Rotate(6) != hexcoord.N {
		t.Fatalf("rotate by 6 should be identity")
	}
	if hexcoord.N.Rotate(1) != hexcoord.NE {
		t.Fatalf("rotate N by 1 should be NE")
	}
	if hexcoord.N.Rotate(-1) != hexcoord.NW {
		t.Fatalf("rotate N by -1 should be NW")
	}
}
