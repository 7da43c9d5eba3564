// Package route18xx computes, for one railway company at a time, the
// maximum-revenue assignment of that company's trains to edge-disjoint
// routes over the current state of an 18xx-family hex-tile board.
//
// Subpackages:
//
//	hexcoord/   — cube hex coordinates, directions, doubled-coordinate parsing
//	tile/       — immutable tile templates: segments, settlements, rotation, upgrade legality
//	catalog/    — phase table, train definitions, tile catalog (explicit, not a singleton)
//	railway/    — a company's home, trains, stations-remaining, floated flag
//	board/      — Hex→Tile map and in-place station bookkeeping
//	bank/       — tile/train supply counts
//	rules/      — legality checks for tile placement, station placement, train acquisition
//	routegraph/ — the city/junction multigraph derived from Board+Railway
//	routeenum/  — exhaustive legal-route enumeration bounded by train range
//	assign/     — combinatorial train-to-route assignment maximizing revenue
//	netinspect/ — map connectivity diagnostics (spanning tree, components)
//	geometry/   — pure pixel-geometry contract for rendering, plus an SVG exporter
//	ioformats/  — JSON loaders/savers for the catalog, board, bank manifest, and save files
//	game/       — the aggregate Game value tying a Catalog to a Board/Bank/Railway set
//
// cmd/route18xx is the CLI front end.
package route18xx
