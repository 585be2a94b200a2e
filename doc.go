// Package mineprop is an inequality-propagation engine for logic-deduction
// puzzles: a finite set of cells is partitioned into mined and unmined, and
// every cell's state is determined purely by propagating cardinality
// constraints of the form "the number of mined cells in set S lies in
// [lo, hi]".
//
// The module is organized one concern per package:
//
//	cellset/         — compact bitset of cell ids
//	inequality/       — the (cells, lo, hi, size) value type and the crossing operator
//	constraintstore/  — canonicalizing CellSet -> Inequality store with meet-tightening
//	crosser/          — bit-indexed pairs-of-inequalities enumerator
//	minesolver/       — Board ingestion, the round state machine, and the public Solve entry point
//
// minesolver.Solve is the module's sole public entry point; the lower
// packages are composable on their own for callers who want to drive the
// constraint store directly.
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full design
// rationale and grounding.
package mineprop
