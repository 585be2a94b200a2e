package cellset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mineprop/cellset"
)

func TestNew_OutOfRange(t *testing.T) {
	_, err := cellset.New(-1)
	assert.ErrorIs(t, err, cellset.ErrBitOutOfRange)

	_, err = cellset.New(cellset.MaxCells)
	assert.ErrorIs(t, err, cellset.ErrBitOutOfRange)
}

func TestSetOps(t *testing.T) {
	a := cellset.MustNew(0, 1, 2, 70)
	b := cellset.MustNew(1, 2, 3, 70)

	assert.Equal(t, cellset.MustNew(1, 2, 70), a.Intersect(b))
	assert.Equal(t, cellset.MustNew(0, 1, 2, 3, 70), a.Union(b))
	assert.Equal(t, cellset.MustNew(0), a.Difference(b))
	assert.Equal(t, 4, a.PopCount())
	assert.True(t, a.Contains(70))
	assert.False(t, a.Contains(3))
}

func TestComplement(t *testing.T) {
	a := cellset.MustNew(0, 2)
	got := a.Complement(4)
	assert.Equal(t, cellset.MustNew(1, 3), got)

	assert.Equal(t, cellset.Empty, cellset.Empty.Complement(0))
}

func TestSubsetSuperset(t *testing.T) {
	a := cellset.MustNew(1, 2)
	b := cellset.MustNew(1, 2, 3)

	assert.True(t, a.Subset(b))
	assert.True(t, b.Superset(a))
	assert.False(t, b.Subset(a))
}

func TestBitsAscendingAndLowestBit(t *testing.T) {
	s := cellset.MustNew(64, 0, 63, 1)
	assert.Equal(t, []int{0, 1, 63, 64}, s.Bits())

	lo, ok := s.LowestBit()
	assert.True(t, ok)
	assert.Equal(t, 0, lo)

	_, ok = cellset.Empty.LowestBit()
	assert.False(t, ok)
}

func TestEqualityAsMapKey(t *testing.T) {
	m := map[cellset.CellSet]int{}
	a := cellset.MustNew(1, 3, 5)
	b := cellset.MustNew(5, 3, 1)
	m[a] = 7
	assert.Equal(t, 7, m[b])
	assert.True(t, a.Equal(b))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, cellset.Empty.IsEmpty())
	assert.False(t, cellset.MustNew(0).IsEmpty())
}
