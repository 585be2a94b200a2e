// Package constraintstore implements the canonicalizing CellSet -> Inequality
// map at the heart of mineprop's propagation engine.
//
// # What
//
// Store owns three things (spec §3/§4.3/§4.4):
//
//   - ineqs:    CellSet -> Inequality, one canonical entry per distinct cell set.
//   - groups:   a partition of the store's keys into trivial / exact / inexact / stale.
//   - bitIndex: for each cell bit, the set of keys whose CellSet contains that bit,
//     so Overlapping and KeysWithBit can enumerate "inequalities overlapping a
//     given one" in time proportional to overlap rather than store size.
//
// Add performs meet-tightening when a key already exists (lo <- max(lo), hi <-
// min(hi)) and fails with ErrUnsatisfiable if the meet collapses the interval.
// Pop removes a key from ineqs, groups, and bitIndex together, so the three
// structures never drift apart.
//
// # Concurrency
//
// Store guards its maps with a sync.RWMutex, even though the Driver's contract (spec §5) is to
// own the store exclusively during a solve: the lock exists for a caller
// that inspects group sizes concurrently (e.g. a round-summary reader),
// not to make concurrent Add calls meaningful — Add is not a commutative
// merge across goroutines and concurrent callers must still serialize their
// own writes.
package constraintstore
