package crosser

import (
	"github.com/katalvlaran/mineprop/cellset"
	"github.com/katalvlaran/mineprop/constraintstore"
	"github.com/katalvlaran/mineprop/inequality"
)

// CrossAllPairs visits every pair (L, R) with L in lefts, R in rights, L != R,
// whose cell sets overlap, exactly once, derives inequalities via
// inequality.Cross, and feeds each one to store.Add. It returns changed=true
// if any Add reported a change, and returns the first ErrUnsatisfiable
// encountered (constraintstore.ErrUnsatisfiable), stopping early.
//
// Complexity: O(sum of overlap sizes), via an ascending bit-indexed scan
// (spec §4.5) rather than the naive O(len(lefts) * len(rights)).
func CrossAllPairs(store *constraintstore.Store, lefts, rights []cellset.CellSet, guard inequality.Guard) (bool, error) {
	leftByBit := indexByBit(lefts)
	rightByBit := indexByBit(rights)

	changed := false

	for bit := 0; bit < cellset.MaxCells; bit++ {
		ls := leftByBit[bit]
		rs := rightByBit[bit]
		if len(ls) == 0 || len(rs) == 0 {
			continue
		}

		for _, l := range ls {
			lq, ok := store.Get(l)
			if !ok {
				continue
			}

			for _, r := range rs {
				if l == r {
					continue
				}
				shared := l.Intersect(r)
				lowest, hasShared := shared.LowestBit()
				if !hasShared || lowest != bit {
					// Either disjoint (shouldn't happen here) or this pair's
					// lowest shared bit was already processed at an earlier
					// iteration: skip to visit each overlapping pair once.
					continue
				}

				rq, ok := store.Get(r)
				if !ok {
					continue
				}

				sharedIneq, left, right, ok := inequality.Cross(lq, rq, guard)
				if !ok {
					continue
				}

				for _, derived := range collectDerived(sharedIneq, left, right) {
					_, didChange, err := store.Add(derived)
					if err != nil {
						return changed, err
					}
					changed = changed || didChange
				}
			}
		}
	}

	return changed, nil
}

func collectDerived(shared inequality.Inequality, left, right *inequality.Inequality) []inequality.Inequality {
	out := make([]inequality.Inequality, 0, 3)
	out = append(out, shared)
	if left != nil {
		out = append(out, *left)
	}
	if right != nil {
		out = append(out, *right)
	}

	return out
}

// indexByBit groups keys by each set bit they contain, for the ascending
// bit-scan in CrossAllPairs.
func indexByBit(keys []cellset.CellSet) [cellset.MaxCells][]cellset.CellSet {
	var idx [cellset.MaxCells][]cellset.CellSet
	for _, k := range keys {
		for _, bit := range k.Bits() {
			idx[bit] = append(idx[bit], k)
		}
	}

	return idx
}
