// Package routeenum enumerates every legal route a railway's trains can
// walk over a routegraph.Graph, up to the largest range among its
// trains, grounded on original_source/solver/bruteforcer.py's
// _build_routes/_merge_routes (spec.md §4.6).
package routeenum
