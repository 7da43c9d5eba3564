// File: commands.go
// Role: one urfave/cli.Command per CLI surface spec.md §6/SUPPLEMENTED
// FEATURES names: solve, place-tile, place-station, give-train, and the
// map diagnostics (mst/components/svg) netinspect/geometry add.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/railtopo/route18xx/assign"
	"github.com/railtopo/route18xx/game"
	"github.com/railtopo/route18xx/geometry"
	"github.com/railtopo/route18xx/netinspect"
	"github.com/railtopo/route18xx/tile"
)

func solveCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "compute the maximum-revenue train-to-route assignment for one railway",
		Flags: append(append([]cli.Flag{}, sourceFlags...),
			&cli.StringFlag{Name: "railway", Usage: "railway id to solve for; falls back to the config file's default_railway"},
		),
		Action: func(c *cli.Context) error {
			g, err := loadGame(c)
			if err != nil {
				return err
			}
			railwayID := c.String("railway")
			if railwayID == "" {
				railwayID = settingsFrom(c).DefaultRailway
			}
			if railwayID == "" {
				return cli.Exit("route18xx: -railway is required (or set default_railway in -config)", exitBadInput)
			}
			sol, err := solveWithBudget(g, railwayID, settingsFrom(c).SolverBudgetSec)
			if err != nil {
				return err
			}
			logger.Info("solved railway", zap.String("railway", railwayID), zap.Int("total", sol.Total))
			for _, a := range sol.Assignments {
				if a.Route == nil {
					fmt.Printf("train %s: unassigned\n", a.Train.ID)
					continue
				}
				cities := 0
				for _, id := range a.Route.Nodes {
					if len(id) > 0 && id[0] == 'C' { // CityNode IDs; junctions are skipped
						cities++
					}
				}
				fmt.Printf("train %s: value=%d cities=%d\n", a.Train.ID, a.Value, cities)
			}
			fmt.Printf("total: %d\n", sol.Total)
			return nil
		},
	}
}

func placeTileCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "place-tile",
		Usage: "validate and apply a tile placement",
		Flags: append(append([]cli.Flag{}, sourceFlags...),
			&cli.StringFlag{Name: "hex", Required: true},
			&cli.StringFlag{Name: "tile", Required: true},
			&cli.IntFlag{Name: "rotation", Value: 0},
			&cli.StringFlag{Name: "out", Usage: "path to write the resulting save file"},
		),
		Action: func(c *cli.Context) error {
			g, err := loadGame(c)
			if err != nil {
				return err
			}
			if err := g.PlaceTile(c.String("hex"), c.String("tile"), c.Int("rotation")); err != nil {
				return err
			}
			logger.Info("placed tile", zap.String("hex", c.String("hex")), zap.String("tile", c.String("tile")))
			return writeOut(c, g)
		},
	}
}

func placeStationCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "place-station",
		Usage: "validate and apply a station placement",
		Flags: append(append([]cli.Flag{}, sourceFlags...),
			&cli.StringFlag{Name: "hex", Required: true},
			&cli.StringFlag{Name: "slot", Value: "C", Usage: "C, R1..R6"},
			&cli.StringFlag{Name: "railway", Required: true},
			&cli.StringFlag{Name: "out"},
		),
		Action: func(c *cli.Context) error {
			g, err := loadGame(c)
			if err != nil {
				return err
			}
			slot, err := parseSlotFlag(c.String("slot"))
			if err != nil {
				return err
			}
			if err := g.PlaceStation(c.String("hex"), slot, c.String("railway")); err != nil {
				return err
			}
			logger.Info("placed station", zap.String("hex", c.String("hex")), zap.String("railway", c.String("railway")))
			return writeOut(c, g)
		},
	}
}

func giveTrainCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "give-train",
		Usage: "buy a train for a railway, advancing the phase if needed",
		Flags: append(append([]cli.Flag{}, sourceFlags...),
			&cli.StringFlag{Name: "train", Required: true},
			&cli.StringFlag{Name: "railway", Required: true},
			&cli.StringFlag{Name: "out"},
		),
		Action: func(c *cli.Context) error {
			g, err := loadGame(c)
			if err != nil {
				return err
			}
			if err := g.GiveTrain(c.String("train"), c.String("railway")); err != nil {
				return err
			}
			logger.Info("gave train", zap.String("train", c.String("train")), zap.String("railway", c.String("railway")),
				zap.String("phase", g.Engine.Phase.ID))
			return writeOut(c, g)
		},
	}
}

func mapCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "map",
		Usage: "board-level diagnostics independent of any one railway",
		Subcommands: []*cli.Command{
			{
				Name:  "mst",
				Usage: "report the minimum spanning tree of the board's track adjacency",
				Flags: sourceFlags,
				Action: func(c *cli.Context) error {
					g, err := loadGame(c)
					if err != nil {
						return err
					}
					report, err := netinspect.SpanningTree(g.Board)
					if err != nil {
						return err
					}
					fmt.Printf("hexes: %d connected: %v edges: %d weight: %d\n",
						report.HexCount, report.Connected, len(report.Edges), report.TotalWeight)
					return nil
				},
			},
			{
				Name:  "components",
				Usage: "report 8-way connected islands of playable hexes on the doubled-coordinate grid",
				Flags: sourceFlags,
				Action: func(c *cli.Context) error {
					g, err := loadGame(c)
					if err != nil {
						return err
					}
					islands, err := netinspect.ConnectedIslands(g.Board)
					if err != nil {
						return err
					}
					for i, isl := range islands {
						fmt.Printf("island %d: %d hexes\n", i, len(isl.Hexes))
					}
					if len(islands) > 1 {
						logger.Warn("board has more than one orthogonal island", zap.Int("count", len(islands)))
					}
					return nil
				},
			},
			{
				Name:  "svg",
				Usage: "render the board to an SVG snapshot",
				Flags: append(append([]cli.Flag{}, sourceFlags...),
					&cli.StringFlag{Name: "out", Required: true},
					&cli.BoolFlag{Name: "labels"},
				),
				Action: func(c *cli.Context) error {
					g, err := loadGame(c)
					if err != nil {
						return err
					}
					data, err := geometry.ExportSVG(g.Board, geometry.ExportOptions{ShowLabels: c.Bool("labels")})
					if err != nil {
						return err
					}
					return os.WriteFile(c.String("out"), data, 0o644)
				},
			},
		},
	}
}

func parseSlotFlag(s string) (tile.SettlementSlot, error) {
	switch s {
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
		return 0, fmt.Errorf("route18xx: unknown settlement slot %q", s)
	}
}

// solveWithBudget runs g.SolveRailway on a background goroutine and
// enforces route18xx.yaml's solver_budget_seconds as a wall-clock cap:
// the branch-and-bound search in assign.Solve carries no cancellation of
// its own, so a runaway search on a large board is bounded here at the
// CLI boundary instead of threading a context through the solver.
// budgetSec <= 0 (no -config, or the field left unset) disables the cap
// and runs the solve inline.
func solveWithBudget(g *game.Game, railwayID string, budgetSec int) (*assign.Solution, error) {
	if budgetSec <= 0 {
		return g.SolveRailway(railwayID)
	}

	type result struct {
		sol *assign.Solution
		err error
	}
	done := make(chan result, 1)
	go func() {
		sol, err := g.SolveRailway(railwayID)
		done <- result{sol, err}
	}()

	select {
	case r := <-done:
		return r.sol, r.err
	case <-time.After(time.Duration(budgetSec) * time.Second):
		return nil, fmt.Errorf("route18xx: solve for railway %s exceeded solver_budget_seconds=%d", railwayID, budgetSec)
	}
}

// writeOut writes g's current state back out as a save file when -out
// was given; otherwise the mutation only affected this one process's
// in-memory Game, which a one-shot CLI invocation has no use for beyond
// reporting success.
func writeOut(c *cli.Context, g interface{ Save() ([]byte, error) }) error {
	out := c.String("out")
	if out == "" {
		return nil
	}
	data, err := g.Save()
	if err != nil {
		return err
	}
	return os.WriteFile(out, data, 0o644)
}
