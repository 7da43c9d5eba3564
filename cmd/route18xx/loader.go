// File: loader.go
// Role: reads the four wire documents spec.md §6 defines off disk and
// hands them to game.New, the single place the CLI touches Sources.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/railtopo/route18xx/game"
)

var sourceFlags = []cli.Flag{
	&cli.StringFlag{Name: "tiles", Usage: "path to the tile catalog JSON", Required: true},
	&cli.StringFlag{Name: "trains", Usage: "path to the train catalog JSON", Required: true},
	&cli.StringFlag{Name: "board", Usage: "path to the board layout JSON", Required: true},
	&cli.StringFlag{Name: "bank", Usage: "path to the bank manifest JSON", Required: true},
	&cli.StringFlag{Name: "save", Usage: "optional save file to apply after loading"},
}

// loadGame builds a Game from -tiles/-trains/-board/-bank, applying
// -save on top if given.
func loadGame(c *cli.Context) (*game.Game, error) {
	read := func(flag string) ([]byte, error) {
		path := c.String(flag)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("route18xx: reading -%s %q: %w", flag, path, err)
		}
		return data, nil
	}

	tiles, err := read("tiles")
	if err != nil {
		return nil, err
	}
	trains, err := read("trains")
	if err != nil {
		return nil, err
	}
	board, err := read("board")
	if err != nil {
		return nil, err
	}
	bank, err := read("bank")
	if err != nil {
		return nil, err
	}

	g, err := game.New(game.Sources{
		TileCatalog:  tiles,
		TrainCatalog: trains,
		BoardLayout:  board,
		BankManifest: bank,
	})
	if err != nil {
		return nil, err
	}

	if savePath := c.String("save"); savePath != "" {
		data, err := os.ReadFile(savePath)
		if err != nil {
			return nil, fmt.Errorf("route18xx: reading -save %q: %w", savePath, err)
		}
		if err := g.LoadSave(data); err != nil {
			return nil, err
		}
	}
	return g, nil
}
