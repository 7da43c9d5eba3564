// File: config.go
// Role: the optional YAML settings file the AMBIENT STACK promotes
// gopkg.in/yaml.v3 for — default game year, default railway, and a
// solver budget knob a long-running solve can honor — read with the
// same decode-into-struct style the teacher library's own go.mod
// dependency is meant for, never a bespoke parser.
package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is route18xx.yaml's shape. Every field is optional; a zero
// value means "let the CLI flag or built-in default decide".
type Settings struct {
	DefaultYear     string `yaml:"default_year"`
	DefaultRailway  string `yaml:"default_railway"`
	SolverBudgetSec int    `yaml:"solver_budget_seconds"`
}

// loadSettings reads and decodes a route18xx.yaml settings file. A
// missing path is not an error: it returns the zero Settings, letting
// flags and defaults take over entirely.
func loadSettings(path string) (*Settings, error) {
	if path == "" {
		return &Settings{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
