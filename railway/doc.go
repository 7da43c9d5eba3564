// Package railway models one operating company: its home hex, the
// trains it currently holds, its remaining station tokens, and whether
// it has floated (spec.md §3, grounded on
// original_source/core/railway.py). Mutation is owned entirely by the
// rules package; Railway itself only exposes read accessors plus the
// narrow mutators rules calls.
package railway
