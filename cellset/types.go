package cellset

import "errors"

// MaxCells is the largest supported cell id, exclusive: ids must lie in [0, MaxCells).
const MaxCells = 128

// Sentinel errors for CellSet construction.
var (
	// ErrBitOutOfRange indicates a requested bit lies outside [0, MaxCells).
	ErrBitOutOfRange = errors.New("cellset: bit out of range")
)

// CellSet is a compact, comparable set of cell ids in [0, MaxCells).
// Two CellSets with the same members compare equal with ==, which is what
// lets constraintstore use CellSet directly as a Go map key.
//
// The zero value is the empty set.
type CellSet struct {
	lo uint64 // bits 0..63
	hi uint64 // bits 64..127
}

// Empty is the CellSet containing no cells.
var Empty = CellSet{}

// New builds a CellSet from the given cell ids. It returns ErrBitOutOfRange
// if any id is negative or >= MaxCells.
func New(bits ...int) (CellSet, error) {
	var cs CellSet
	for _, b := range bits {
		if b < 0 || b >= MaxCells {
			return CellSet{}, ErrBitOutOfRange
		}
		cs = cs.with(b)
	}

	return cs, nil
}

// MustNew is like New but panics on error; intended for package-level table
// data and tests, never for puzzle input from a caller.
func MustNew(bits ...int) CellSet {
	cs, err := New(bits...)
	if err != nil {
		panic(err)
	}

	return cs
}

func (c CellSet) with(bit int) CellSet {
	if bit < 64 {
		c.lo |= 1 << uint(bit)
	} else {
		c.hi |= 1 << uint(bit-64)
	}

	return c
}
