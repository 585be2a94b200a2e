package minesolver

import (
	"fmt"

	"github.com/katalvlaran/mineprop/cellset"
	"github.com/katalvlaran/mineprop/constraintstore"
	"github.com/katalvlaran/mineprop/crosser"
	"github.com/katalvlaran/mineprop/inequality"
)

// outcome is the result of one round: whether the driver should keep
// looping, or has reached a terminal state (solved, or one of the three
// failure kinds of spec §7).
type outcome int

const (
	outcomeContinue outcome = iota
	outcomeSolved
	outcomeStuck
	outcomeStuckBudget
	outcomeUnsatisfiable
)

// driver runs the round state machine of spec §4.6 over a constraintstore.Store
// seeded by the Board Adapter.
type driver struct {
	store      *constraintstore.Store
	guard      inequality.Guard
	revealed   cellset.CellSet
	flagged    cellset.CellSet
	boardIneqs map[int]inequality.Inequality
	budget     int // -1 = unlimited
	maxBudget  int

	// pendingErr carries an ErrUnsatisfiable surfaced while adding a board
	// inequality mid-trivialStage, whose return shape is fixed by the Scorer
	// Facade contract (RoundRecord, not an error).
	pendingErr error
}

func newDriver(a adapted, opts Options) (*driver, error) {
	d := &driver{
		store:      constraintstore.New(),
		guard:      opts.Guard,
		revealed:   a.initialRevealed,
		flagged:    cellset.Empty,
		boardIneqs: a.boardIneqs,
		budget:     opts.MaxInexactStages,
		maxBudget:  opts.MaxInexactStages,
	}

	for _, q := range a.seeds {
		if _, _, err := d.store.Add(q); err != nil {
			return nil, err
		}
	}
	// Cells revealed before solving starts immediately contribute their
	// board inequality; the first adjust pass trims any already-revealed
	// neighbors out of it.
	for _, c := range a.initialRevealed.Bits() {
		if q, ok := d.boardIneqs[c]; ok {
			if _, _, err := d.store.Add(q); err != nil {
				return nil, err
			}
			delete(d.boardIneqs, c)
		}
	}

	return d, nil
}

func (d *driver) allKeys() []cellset.CellSet {
	out := d.store.Keys(constraintstore.Trivial)
	out = append(out, d.store.Keys(constraintstore.Exact)...)
	out = append(out, d.store.Keys(constraintstore.Inexact)...)
	out = append(out, d.store.Keys(constraintstore.Stale)...)

	return out
}

// adjustStage implements spec §4.6 step 1.
func (d *driver) adjustStage() error {
	revFlag := d.revealed.Union(d.flagged)
	for _, cells := range d.allKeys() {
		if cells.Intersect(revFlag).IsEmpty() {
			continue
		}
		q, ok := d.store.Pop(cells)
		if !ok {
			continue
		}
		newCells := cells.Difference(revFlag)
		if newCells.IsEmpty() {
			continue
		}
		flaggedCount := uint32(cells.Intersect(d.flagged).PopCount())
		newSize := uint32(newCells.PopCount())

		lo := int64(q.Lo) - int64(flaggedCount)
		if lo < 0 {
			lo = 0
		}
		hi := int64(q.Hi) - int64(flaggedCount)
		if hi < 0 {
			hi = 0
		}
		if hi > int64(newSize) {
			hi = int64(newSize)
		}

		nq, err := inequality.New(newCells, uint32(lo), uint32(hi))
		if err != nil {
			return fmt.Errorf("minesolver: adjust produced invalid inequality: %w", err)
		}
		if _, _, err := d.store.Add(nq); err != nil {
			return err
		}
	}

	return nil
}

// trivialStage implements spec §4.6 step 3: consumes every trivial key,
// folding its cells into revealed or flagged and contributing any board
// inequality that becomes due.
func (d *driver) trivialStage() *TrivialProgress {
	keys := d.store.Keys(constraintstore.Trivial)
	if len(keys) == 0 {
		return nil
	}

	prog := &TrivialProgress{}
	for _, cells := range keys {
		q, ok := d.store.Pop(cells)
		if !ok {
			continue
		}
		if q.AllRevealed() {
			d.revealed = d.revealed.Union(cells)
			prog.Revealed = append(prog.Revealed, cells.Bits()...)
			for _, c := range cells.Bits() {
				if bq, ok := d.boardIneqs[c]; ok {
					if _, _, err := d.store.Add(bq); err != nil && d.pendingErr == nil {
						d.pendingErr = err
					}
					delete(d.boardIneqs, c)
				}
			}
		} else {
			d.flagged = d.flagged.Union(cells)
			prog.Flagged = append(prog.Flagged, cells.Bits()...)
		}
	}
	d.resetBudget()

	return prog
}

func (d *driver) resetBudget() {
	d.budget = d.maxBudget
}

// round runs one pass of the state machine (spec §4.6) and returns the
// RoundRecord it produced plus the resulting outcome.
func (d *driver) round() (RoundRecord, outcome, error) {
	rec := RoundRecord{NumIneqs: d.store.Len()}

	if err := d.adjustStage(); err != nil {
		return rec, outcomeUnsatisfiable, err
	}

	if d.store.Len() == 0 {
		return rec, outcomeSolved, nil
	}

	if d.store.GroupLen(constraintstore.Trivial) > 0 {
		rec.Trivial = d.trivialStage()
		if d.pendingErr != nil {
			err := d.pendingErr
			d.pendingErr = nil

			return rec, outcomeUnsatisfiable, err
		}

		return rec, outcomeContinue, nil
	}

	if d.store.GroupLen(constraintstore.Exact) > 0 {
		exact := d.store.Keys(constraintstore.Exact)
		rec.Exact = &StageProgress{Count: len(exact)}
		rest := d.unionOf(constraintstore.Exact, constraintstore.Inexact, constraintstore.Stale)

		changed, err := crosser.CrossAllPairs(d.store, exact, rest, d.guard)
		if err != nil {
			return rec, outcomeUnsatisfiable, err
		}
		for _, k := range exact {
			d.store.MarkStale(k)
		}
		d.resetBudget()

		if changed {
			return rec, outcomeContinue, nil
		}
		// Fall through to the inexact stage within this same round.
	}

	unlimited := d.budget == -1
	if !unlimited {
		d.budget--
		if d.budget == 0 {
			return rec, outcomeStuckBudget, nil
		}
	}

	inexact := d.store.Keys(constraintstore.Inexact)
	rec.Inexact = &StageProgress{Count: len(inexact)}

	var changed bool
	if len(inexact) > 0 {
		rest := d.unionOf(constraintstore.Inexact, constraintstore.Stale)
		var err error
		changed, err = crosser.CrossAllPairs(d.store, inexact, rest, d.guard)
		if err != nil {
			return rec, outcomeUnsatisfiable, err
		}
		for _, k := range inexact {
			d.store.MarkStale(k)
		}
	}

	if !changed {
		// With an unlimited budget there is no other way to detect a
		// structural dead end, so a no-op inexact cross terminates directly.
		// With a finite budget, an unproductive round simply consumes one
		// unit of budget and tries again next round.
		if unlimited {
			return rec, outcomeStuck, nil
		}

		return rec, outcomeContinue, nil
	}

	return rec, outcomeContinue, nil
}

func (d *driver) unionOf(groups ...constraintstore.Group) []cellset.CellSet {
	var out []cellset.CellSet
	for _, g := range groups {
		out = append(out, d.store.Keys(g)...)
	}

	return out
}
