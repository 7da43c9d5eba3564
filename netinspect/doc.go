// Package netinspect runs board-level connectivity diagnostics that are
// independent of any single railway's route search: a minimum spanning
// tree over every hex's track connections (catching an accidentally
// disconnected map before a solve is attempted), and an orthogonal
// connected-components scan over the board's playable footprint. Neither
// has an original_source counterpart; both are supplementary tooling
// spec.md §1 leaves room for ("pre-solve sanity checks").
package netinspect
