// Package minesolver is the public facade of mineprop: it ingests a Board
// (cells, neighbor lists, group hints, initially-revealed cells), wires the
// seed inequalities into a constraintstore.Store, and runs the round state
// machine described in spec §4.6 until the puzzle closes or a progress
// budget is exhausted.
//
// # What
//
//   - Board is the ingest form (spec §6): cells tagged '.'  (empty), '*'
//     (mined), '?' (unknown count), each with a neighbor list, plus an
//     initially-revealed cell list and group (count, ids) constraints.
//   - Solve(board, opts) is the single dispatcher entry point, in a
//     two-stage validate-then-run shape.
//   - Each round of the internal driver appends one RoundRecord to
//     Result.Summary, recording which propagation stage (trivial / exact /
//     inexact) produced progress — the Scorer Facade's contract (spec §4.8),
//     consumed by a difficulty scorer that lives outside this module.
//
// # Why
//
// Splitting the engine this way keeps constraintstore/crosser/inequality
// fully agnostic of "Minesweeper" — they only know about cell sets and
// cardinality bounds — while minesolver owns the one piece of domain
// knowledge the spec assigns to a Board Adapter: turning revealed-empty
// cells and their true neighborhood mine counts into seed inequalities.
//
// # Errors
//
//	ErrDuplicateCellID, ErrDanglingNeighbor, ErrUnknownConstraintCell - Board shape errors, returned before solving starts.
//	ErrStuck, ErrStuckBudgetExhausted - round-loop termination without a solution (spec §7).
//	constraintstore.ErrUnsatisfiable - surfaced through Result.Err, wrapped with the offending cell set; match it with errors.Is.
//
// See SPEC_FULL.md for the full expansion this package implements.
package minesolver
