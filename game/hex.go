package game

import "github.com/railtopo/route18xx/hexcoord"

// hexFromString adapts hexcoord.FromString's error-returning parse for
// Game's string-keyed convenience methods (a CLI passes hexes as plain
// strings; hexcoord.Hex is the value type every other package uses).
func hexFromString(s string) (hexcoord.Hex, error) {
	return hexcoord.FromString(s)
}
