package minesolver

import (
	"fmt"

	"github.com/katalvlaran/mineprop/cellset"
	"github.com/katalvlaran/mineprop/inequality"
)

// adapted is the Board Adapter's output (spec §4.7): everything the driver
// needs to seed its constraintstore and to react to future reveals.
type adapted struct {
	n               int
	initialRevealed cellset.CellSet
	seeds           []inequality.Inequality
	boardIneqs      map[int]inequality.Inequality // empty-cell id -> neighborhood inequality
}

// validate checks Board's shape: non-empty, unique dense ids in [0, len(Cells)),
// no dangling neighbor/constraint/revealed references, and a cell count
// within cellset.MaxCells. It returns nil on success.
func validate(b Board) error {
	if len(b.Cells) == 0 {
		return ErrNilBoard
	}
	n := len(b.Cells)
	if n > cellset.MaxCells {
		return fmt.Errorf("%w: %d cells, max %d", ErrTooManyCells, n, cellset.MaxCells)
	}

	seen := make(map[int]bool, n)
	for _, c := range b.Cells {
		if c.ID < 0 || c.ID >= n {
			return fmt.Errorf("%w: %d", ErrCellIDOutOfRange, c.ID)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateCellID, c.ID)
		}
		seen[c.ID] = true
	}

	for _, c := range b.Cells {
		for _, nb := range c.Neighbors {
			if !seen[nb] {
				return fmt.Errorf("%w: cell %d -> %d", ErrDanglingNeighbor, c.ID, nb)
			}
		}
	}

	for _, id := range b.Revealed {
		if !seen[id] {
			return fmt.Errorf("%w: %d", ErrUnknownRevealedCell, id)
		}
	}

	for _, gc := range b.Constraints {
		for _, id := range gc.IDs {
			if !seen[id] {
				return fmt.Errorf("%w: %d", ErrUnknownConstraintCell, id)
			}
		}
	}

	return nil
}

// adapt builds the Board Adapter's output from a validated Board.
//
// seeds follows the original source's convert_constraints: cells already in
// the initial revealed set are dropped from a group hint's cell list before
// the inequality is built (a revealed cell is known mine-free, so removing
// it never changes the true count), and the hint is skipped entirely if that
// leaves no cells.
//
// boardIneqs uses the FULL neighborhood N(c), not pre-trimmed by revealed
// state: trimming already-revealed/flagged neighbors out of a stored
// inequality is the adjust stage's job (spec §4.6 step 1), run on the very
// next round after a board inequality is added. This matches the Tametsi
// solver's own board_ineqs construction.
func adapt(b Board) (adapted, error) {
	n := len(b.Cells)
	initialRevealed := cellset.MustNew(b.Revealed...)

	seeds := make([]inequality.Inequality, 0, len(b.Constraints))
	for _, gc := range b.Constraints {
		ids := make([]int, 0, len(gc.IDs))
		for _, id := range gc.IDs {
			if !initialRevealed.Contains(id) {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			continue
		}
		cells := cellset.MustNew(ids...)
		q, err := inequality.New(cells, uint32(gc.Count), uint32(gc.Count))
		if err != nil {
			return adapted{}, fmt.Errorf("minesolver: building seed constraint: %w", err)
		}
		seeds = append(seeds, q)
	}

	roleByID := make(map[int]Role, n)
	for _, c := range b.Cells {
		roleByID[c.ID] = c.Role
	}

	boardIneqs := make(map[int]inequality.Inequality)
	for _, c := range b.Cells {
		if c.Role != RoleEmpty || len(c.Neighbors) == 0 {
			continue
		}
		k := 0
		for _, nb := range c.Neighbors {
			if roleByID[nb] == RoleMined {
				k++
			}
		}
		cells := cellset.MustNew(c.Neighbors...)
		q, err := inequality.New(cells, uint32(k), uint32(k))
		if err != nil {
			return adapted{}, fmt.Errorf("minesolver: building board inequality for cell %d: %w", c.ID, err)
		}
		boardIneqs[c.ID] = q
	}

	return adapted{
		n:               n,
		initialRevealed: initialRevealed,
		seeds:           seeds,
		boardIneqs:      boardIneqs,
	}, nil
}
