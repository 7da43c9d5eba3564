// Command route18xx is the CLI front end for the route solver: it loads
// a tile/train catalog, board layout, and bank manifest, applies
// mutations (tile/station placement, train purchase), and solves a
// railway's maximum-revenue route assignment, grounded on
// original_source/main.py's load-then-act shape (there: load a Game and
// hand it to a GUI event loop; here: load a Game and run one CLI
// subcommand against it).
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/railtopo/route18xx/railerr"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "route18xx: failed to initialize logger:", err)
		os.Exit(exitInternal)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failures aren't actionable here

	os.Exit(run(logger, os.Args))
}

// run builds and executes the CLI app, recovering an InternalInconsistency
// panic (railerr.Internal) into spec.md §6's exit code 4 instead of a
// raw stack trace, and otherwise classifying the returned error via
// exitCodeFor.
func run(logger *zap.Logger, args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("internal inconsistency", zap.Any("panic", r))
			code = exitInternal
		}
	}()

	app := buildApp(logger)
	if err := app.Run(args); err != nil {
		logKind(logger, err)
		return exitCodeFor(err)
	}
	return exitOK
}

func logKind(logger *zap.Logger, err error) {
	switch {
	case railerr.Is(err, railerr.KindRule):
		logger.Error("rule violation", zap.Error(err))
	case railerr.Is(err, railerr.KindNotFound), railerr.Is(err, railerr.KindInvalidArgument):
		logger.Error("bad input", zap.Error(err))
	default:
		logger.Error("command failed", zap.Error(err))
	}
}

// settingsKey indexes the decoded route18xx.yaml Settings inside
// cli.App.Metadata, populated once in Before and read by commands that
// accept a config-supplied default (solveCommand's -railway fallback).
const settingsKey = "settings"

func buildApp(logger *zap.Logger) *cli.App {
	app := &cli.App{
		Name:  "route18xx",
		Usage: "route solver and board tooling for an 18xx-family railway game",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a route18xx.yaml settings file"},
		},
		Commands: []*cli.Command{
			solveCommand(logger),
			placeTileCommand(logger),
			placeStationCommand(logger),
			giveTrainCommand(logger),
			mapCommand(logger),
		},
	}
	app.Before = func(c *cli.Context) error {
		settings, err := loadSettings(c.String("config"))
		if err != nil {
			return err
		}
		if app.Metadata == nil {
			app.Metadata = map[string]interface{}{}
		}
		app.Metadata[settingsKey] = settings
		return nil
	}
	return app
}

// settingsFrom recovers the Settings app.Before decoded, falling back to
// the zero value if -config was never given.
func settingsFrom(c *cli.Context) *Settings {
	if s, ok := c.App.Metadata[settingsKey].(*Settings); ok {
		return s
	}
	return &Settings{}
}

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
