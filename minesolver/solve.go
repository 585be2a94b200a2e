package minesolver

import (
	"errors"
	"fmt"
)

// Solve validates board, seeds a constraint store via the Board Adapter, and
// runs the round state machine (spec §4.6) to quiescence.
//
// Mirrors this module's two-tier validate-then-dispatch shape: board shape
// errors are returned immediately, before any solving work begins.
func Solve(board Board, opts Options) (Result, error) {
	if err := validate(board); err != nil {
		return Result{}, err
	}

	a, err := adapt(board)
	if err != nil {
		return Result{}, err
	}

	d, err := newDriver(a, opts)
	if err != nil {
		return resultFromErr(d, err), nil
	}

	trace := newTracer(opts.Verbose)

	var summary []RoundRecord
	for {
		rec, out, err := d.round()
		summary = append(summary, rec)
		trace.round(len(summary), rec, out)

		switch out {
		case outcomeContinue:
			continue
		case outcomeSolved:
			return Result{
				Solved:   true,
				Revealed: d.revealed.Bits(),
				Flagged:  d.flagged.Bits(),
				Summary:  summary,
			}, nil
		case outcomeStuck:
			return resultWithSummary(d, summary, fmt.Errorf("%w", ErrStuck)), nil
		case outcomeStuckBudget:
			return resultWithSummary(d, summary, fmt.Errorf("%w", ErrStuckBudgetExhausted)), nil
		case outcomeUnsatisfiable:
			return resultWithSummary(d, summary, err), nil
		default:
			return Result{}, errors.New("minesolver: unreachable round outcome")
		}
	}
}

func resultFromErr(d *driver, err error) Result {
	if d == nil {
		return Result{Err: err}
	}

	return resultWithSummary(d, nil, err)
}

func resultWithSummary(d *driver, summary []RoundRecord, err error) Result {
	return Result{
		Solved:   false,
		Revealed: d.revealed.Bits(),
		Flagged:  d.flagged.Bits(),
		Summary:  summary,
		Err:      err,
	}
}
