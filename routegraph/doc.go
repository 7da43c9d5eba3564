// Package routegraph derives the multigraph of city slots and hex-edge
// junctions a railway's trains can walk, from a Board and that railway's
// station placements (spec.md §3/§4.5).
//
// The graph is recomputed from scratch whenever Board or Railway state
// mutates (spec.md §3's "derived" note); nothing here caches across
// calls to Build.
package routegraph
