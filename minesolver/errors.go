package minesolver

import "errors"

// Sentinel errors for Board validation and solve-loop termination.
var (
	// ErrNilBoard is returned when Solve is given a Board with no cells.
	ErrNilBoard = errors.New("minesolver: board has no cells")

	// ErrDuplicateCellID indicates two CellSpec entries share an ID.
	ErrDuplicateCellID = errors.New("minesolver: duplicate cell id")

	// ErrDanglingNeighbor indicates a cell lists a neighbor id that is not in Cells.
	ErrDanglingNeighbor = errors.New("minesolver: neighbor references unknown cell id")

	// ErrUnknownConstraintCell indicates a GroupConstraint references an unknown cell id.
	ErrUnknownConstraintCell = errors.New("minesolver: group constraint references unknown cell id")

	// ErrUnknownRevealedCell indicates the initial Revealed list references an unknown cell id.
	ErrUnknownRevealedCell = errors.New("minesolver: revealed list references unknown cell id")

	// ErrTooManyCells indicates the board exceeds cellset.MaxCells.
	ErrTooManyCells = errors.New("minesolver: board exceeds the maximum supported cell count")

	// ErrCellIDOutOfRange indicates a CellSpec.ID falls outside [0, len(Cells)),
	// violating the dense-id assumption (spec §3).
	ErrCellIDOutOfRange = errors.New("minesolver: cell id out of range")

	// ErrStuck indicates a round produced no change in any stage while the
	// store remained non-empty (spec §7).
	ErrStuck = errors.New("minesolver: stuck, no stage made progress")

	// ErrStuckBudgetExhausted indicates the inexact-stage progress budget
	// reached zero while the store remained non-empty (spec §7).
	ErrStuckBudgetExhausted = errors.New("minesolver: stuck, inexact-stage budget exhausted")
)
