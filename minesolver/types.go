package minesolver

import "github.com/katalvlaran/mineprop/inequality"

// Role tags a cell's ground-truth kind in the ingest form (spec §6).
type Role byte

const (
	// RoleEmpty marks a cell with a known mine count in its neighborhood.
	RoleEmpty Role = '.'
	// RoleMined marks a cell that is itself a mine.
	RoleMined Role = '*'
	// RoleUnknown marks a cell whose neighborhood count is not contributed
	// to the store even once revealed.
	RoleUnknown Role = '?'
)

// CellSpec describes one cell of the board: its id, ground-truth role, and
// its neighbor ids.
type CellSpec struct {
	ID        int
	Role      Role
	Neighbors []int
}

// GroupConstraint is a (count, ids) hint: exactly count mines lie within ids
// (column/color/total hints, spec §6).
type GroupConstraint struct {
	Count int
	IDs   []int
}

// Board is the Board Adapter's ingest form (spec §4.7/§6).
type Board struct {
	Cells       []CellSpec
	Revealed    []int
	Constraints []GroupConstraint
}

// Options configures a Solve call (spec §6).
type Options struct {
	// MaxInexactStages bounds consecutive rounds with no trivial or exact
	// progress (spec Design Notes §9's resolution of Open Question 3).
	// -1 means unlimited.
	MaxInexactStages int

	// Guard is the complexity guard applied by every crossing (spec §4.2).
	Guard inequality.Guard

	// Verbose enables the debug trace in trace.go. Debug output only; never
	// part of the result.
	Verbose bool
}

// DefaultOptions returns the spec's defaults: unlimited inexact-stage
// budget, the default complexity guard (MaxCells=9, MaxMines=3), no trace.
func DefaultOptions() Options {
	return Options{
		MaxInexactStages: -1,
		Guard:            inequality.DefaultGuard(),
		Verbose:          false,
	}
}

// StageProgress records how many inequalities a cross stage drew its
// candidates from.
type StageProgress struct {
	Count int
}

// TrivialProgress records the cells consumed by a trivial-stage round.
type TrivialProgress struct {
	Revealed []int
	Flagged  []int
}

// RoundRecord is the Scorer Facade's per-round output (spec §4.8/§8).
// Non-nil fields indicate which stage(s) fired during that round.
type RoundRecord struct {
	NumIneqs int
	Trivial  *TrivialProgress
	Exact    *StageProgress
	Inexact  *StageProgress
}

// Result is Solve's return value (spec §6).
type Result struct {
	Solved   bool
	Revealed []int
	Flagged  []int
	Summary  []RoundRecord
	// Err is the terminal error when Solved is false: one of
	// constraintstore.ErrUnsatisfiable, ErrStuck, or ErrStuckBudgetExhausted,
	// possibly wrapped (match with errors.Is). Err is nil when Solved is true.
	Err error
}
