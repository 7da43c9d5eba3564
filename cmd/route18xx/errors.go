// File: errors.go
// Role: maps railerr kinds onto the CLI exit codes spec.md §6 names: 0
// success, 2 RuleError, 3 bad input, 4 internal.
package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/railtopo/route18xx/railerr"
)

const (
	exitOK           = 0
	exitUnclassified = 1
	exitRuleError    = 2
	exitBadInput     = 3
	exitInternal     = 4
)

// exitCodeFor honors an explicit cli.ExitCoder first (solveCommand's
// missing-railway case returns one directly), then classifies err
// against railerr's tagged kinds. An error that matches neither (a bare
// flag-parsing error from urfave/cli itself, for instance) falls back to
// exitUnclassified rather than guessing a spec.md §6 code it doesn't
// actually match.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	switch {
	case railerr.Is(err, railerr.KindRule):
		return exitRuleError
	case railerr.Is(err, railerr.KindInvalidArgument), railerr.Is(err, railerr.KindNotFound):
		return exitBadInput
	default:
		return exitUnclassified
	}
}
