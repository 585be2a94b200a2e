// Package cellset provides CellSet, a compact, comparable bitset of cell
// indices used as the canonical key throughout mineprop: constraintstore
// keys its store by CellSet, crosser enumerates overlapping CellSets via
// their set bits, and minesolver tracks revealed/flagged cells as CellSets.
//
// A CellSet covers a fixed universe of up to 128 cell ids ([0,128)), backed
// by two uint64 words. This bound is a deliberate trade (see Design Notes in
// SPEC_FULL.md): fixed-width words keep intersection, union, popcount and
// equality-hashing O(1), at the cost of capping puzzle size. Callers solving
// larger boards should shard the puzzle or widen CellSet's backing words;
// mineprop does not attempt arbitrary-precision sets.
package cellset
