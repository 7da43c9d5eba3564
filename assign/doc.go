// Package assign chooses a subset of candidate routes and assigns each
// to one of a railway's trains to maximize total revenue, subject to
// per-train range feasibility and cross-train edge-disjointness
// (spec.md §4.7), grounded on
// original_source/solver/bruteforcer.py's _train_route_pairings.
package assign
