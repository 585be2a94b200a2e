package minesolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mineprop/cellset"
	"github.com/katalvlaran/mineprop/constraintstore"
	"github.com/katalvlaran/mineprop/inequality"
)

func newTestDriver(t *testing.T, revealed, flagged cellset.CellSet) *driver {
	t.Helper()

	return &driver{
		store:      constraintstore.New(),
		guard:      DefaultOptions().Guard,
		revealed:   revealed,
		flagged:    flagged,
		boardIneqs: map[int]inequality.Inequality{},
		budget:     -1,
		maxBudget:  -1,
	}
}

// TestDriver_AdjustStage_TrimsOverlap covers invariant 2: after adjust, no
// stored inequality's cells intersect revealed ∪ flagged.
func TestDriver_AdjustStage_TrimsOverlap(t *testing.T) {
	d := newTestDriver(t, cellset.MustNew(0), cellset.MustNew(1))

	q, err := inequality.New(cellset.MustNew(0, 1, 2, 3), 2, 3)
	require.NoError(t, err)
	_, _, err = d.store.Add(q)
	require.NoError(t, err)

	require.NoError(t, d.adjustStage())

	revFlag := d.revealed.Union(d.flagged)
	for _, k := range d.allKeys() {
		assert.True(t, k.Intersect(revFlag).IsEmpty(), "key %s overlaps revealed/flagged", k)
	}

	// Original cells {0,1,2,3} with (lo=2,hi=3): cell 0 revealed (mine-free,
	// doesn't affect bounds), cell 1 flagged (one mine accounted for).
	// Remaining cells {2,3}: lo = max(0,2-1) = 1, hi = min(2, max(0,3-1)) = 2.
	remaining, ok := d.store.Get(cellset.MustNew(2, 3))
	require.True(t, ok)
	assert.EqualValues(t, 1, remaining.Lo)
	assert.EqualValues(t, 2, remaining.Hi)
}

func TestDriver_AdjustStage_DropsFullyConsumedKey(t *testing.T) {
	d := newTestDriver(t, cellset.MustNew(0), cellset.Empty)

	q, err := inequality.New(cellset.MustNew(0), 0, 1)
	require.NoError(t, err)
	_, _, err = d.store.Add(q)
	require.NoError(t, err)

	require.NoError(t, d.adjustStage())
	assert.Equal(t, 0, d.store.Len())
}

func TestDriver_TrivialStage_RevealsAndFlagsThenClearsGroup(t *testing.T) {
	d := newTestDriver(t, cellset.Empty, cellset.Empty)

	clear, err := inequality.New(cellset.MustNew(0, 1), 0, 0)
	require.NoError(t, err)
	full, err := inequality.New(cellset.MustNew(2, 3), 2, 2)
	require.NoError(t, err)
	_, _, err = d.store.Add(clear)
	require.NoError(t, err)
	_, _, err = d.store.Add(full)
	require.NoError(t, err)
	require.Equal(t, 2, d.store.GroupLen(constraintstore.Trivial))

	prog := d.trivialStage()
	require.NotNil(t, prog)
	assert.ElementsMatch(t, []int{0, 1}, prog.Revealed)
	assert.ElementsMatch(t, []int{2, 3}, prog.Flagged)
	assert.Equal(t, 0, d.store.GroupLen(constraintstore.Trivial))
	assert.True(t, cellset.MustNew(0, 1).Subset(d.revealed))
	assert.True(t, cellset.MustNew(2, 3).Subset(d.flagged))
}
