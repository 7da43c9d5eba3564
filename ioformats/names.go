package ioformats

import (
	"fmt"
	"strings"

	"github.com/railtopo/route18xx/hexcoord"
	"github.com/railtopo/route18xx/railerr"
	"github.com/railtopo/route18xx/tile"
)

func parseColor(name string) (tile.Color, error) {
	switch strings.ToUpper(name) {
	case "BLANK", "":
		return tile.Blank, nil
	case "YELLOW":
		return tile.Yellow, nil
	case "GREEN":
		return tile.Green, nil
	case "BROWN":
		return tile.Brown, nil
	case "GRAY", "GREY":
		return tile.Gray, nil
	case "RED":
		return tile.Red, nil
	default:
		return 0, railerr.InvalidArgument(fmt.Sprintf("ioformats: unknown color name %q", name))
	}
}

func parseDirection(name string) (hexcoord.Direction, error) {
	switch strings.ToUpper(name) {
	case "N":
		return hexcoord.N, nil
	case "NE":
		return hexcoord.NE, nil
	case "SE":
		return hexcoord.SE, nil
	case "S":
		return hexcoord.S, nil
	case "SW":
		return hexcoord.SW, nil
	case "NW":
		return hexcoord.NW, nil
	default:
		return 0, railerr.InvalidArgument(fmt.Sprintf("ioformats: unknown direction name %q", name))
	}
}

func parseSlot(name string) (tile.SettlementSlot, error) {
	switch strings.ToUpper(name) {
	case "C", "":
		return tile.SlotC, nil
	case "R1":
		return tile.SlotR1, nil
	case "R2":
		return tile.SlotR2, nil
	case "R3":
		return tile.SlotR3, nil
	case "R4":
		return tile.SlotR4, nil
	case "R5":
		return tile.SlotR5, nil
	case "R6":
		return tile.SlotR6, nil
	default:
		return 0, railerr.InvalidArgument(fmt.Sprintf("ioformats: unknown settlement slot name %q", name))
	}
}
