package inequality

import (
	"errors"

	"github.com/katalvlaran/mineprop/cellset"
)

// Sentinel errors for Inequality construction.
var (
	// ErrEmptyCells indicates a zero-cell inequality was requested; size must be >= 1.
	ErrEmptyCells = errors.New("inequality: cells must be non-empty")

	// ErrBoundsOutOfOrder indicates the bounds violate 0 <= lo <= hi <= size.
	ErrBoundsOutOfOrder = errors.New("inequality: bounds must satisfy 0 <= lo <= hi <= size")

	// ErrSizeMismatch indicates the supplied size does not equal popcount(cells).
	ErrSizeMismatch = errors.New("inequality: size does not match popcount(cells)")
)

// Inequality asserts Lo <= #mines(Cells) <= Hi. Size caches popcount(Cells)
// so callers need not recompute it on every access.
type Inequality struct {
	Cells cellset.CellSet
	Lo    uint32
	Hi    uint32
	Size  uint32
}

// New validates and constructs an Inequality. It enforces:
//
//	size == popcount(cells) > 0
//	0 <= lo <= hi <= size
func New(cells cellset.CellSet, lo, hi uint32) (Inequality, error) {
	size := uint32(cells.PopCount())
	if size == 0 {
		return Inequality{}, ErrEmptyCells
	}
	if lo > hi || hi > size {
		return Inequality{}, ErrBoundsOutOfOrder
	}

	return Inequality{Cells: cells, Lo: lo, Hi: hi, Size: size}, nil
}

// Trivial reports whether every cell in the inequality is forced: hi == 0
// (all cells are mine-free) or lo == size (all cells are mined).
func (q Inequality) Trivial() bool {
	return q.Hi == 0 || q.Lo == q.Size
}

// Exact reports whether lo == hi (but the inequality is not Trivial()).
func (q Inequality) Exact() bool {
	return q.Lo == q.Hi && !q.Trivial()
}

// Inexact reports whether lo < hi.
func (q Inequality) Inexact() bool {
	return q.Lo < q.Hi
}

// AllRevealed reports whether this trivial inequality forces its cells to be
// revealed (mine-free), i.e. Hi == 0. Callers should check Trivial() first.
func (q Inequality) AllRevealed() bool {
	return q.Hi == 0
}

// AllFlagged reports whether this trivial inequality forces its cells to be
// flagged (mined), i.e. Lo == Size. Callers should check Trivial() first.
func (q Inequality) AllFlagged() bool {
	return q.Lo == q.Size && q.Hi != 0
}

// Meet returns p tightened against q, another inequality over the SAME cell
// set: lo <- max(lo,lo2), hi <- min(hi,hi2). Neither input is modified. The caller is responsible for
// verifying p.Cells == q.Cells; Meet does not check this itself since
// constraintstore already guarantees it by construction (same map key).
func Meet(p, q Inequality) (Inequality, error) {
	lo := p.Lo
	if q.Lo > lo {
		lo = q.Lo
	}
	hi := p.Hi
	if q.Hi < hi {
		hi = q.Hi
	}
	if lo > hi {
		return Inequality{}, ErrBoundsOutOfOrder
	}

	return Inequality{Cells: p.Cells, Lo: lo, Hi: hi, Size: p.Size}, nil
}

// Guard bounds the combinatorial blowup of crossing large, loose
// inequalities (spec's complexity guard): a crossing input is skipped when
// its size exceeds MaxCells AND its lower bound exceeds MaxMines.
type Guard struct {
	MaxCells uint32
	MaxMines uint32
}

// DefaultGuard returns the spec's default complexity guard: MaxCells=9, MaxMines=3.
func DefaultGuard() Guard {
	return Guard{MaxCells: 9, MaxMines: 3}
}

// skip reports whether q should be excluded from crossing under g.
func (g Guard) skip(q Inequality) bool {
	return q.Size > g.MaxCells && q.Lo > g.MaxMines
}
