package constraintstore

import (
	"fmt"

	"github.com/katalvlaran/mineprop/cellset"
	"github.com/katalvlaran/mineprop/inequality"
)

// Add inserts q, or meet-tightens the existing entry keyed by q.Cells.
// Returns the canonical (post-tightening) inequality and whether it changed
// the store's state. A tautological q (Lo == 0 and Hi == Size) is rejected
// silently: it carries no information, so it is not inserted and changed is
// false.
//
// Add returns ErrUnsatisfiable, wrapping q.Cells, if meet-tightening would
// collapse the bounds (lo > hi).
func (s *Store) Add(q inequality.Inequality) (inequality.Inequality, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q.Lo == 0 && q.Hi == q.Size {
		return inequality.Inequality{}, false, nil
	}

	existing, found := s.ineqs[q.Cells]
	if !found {
		// q may arrive already self-contradictory: crossing two inputs that
		// disagree about their shared cells can derive lo > hi directly,
		// without ever going through an existing entry to meet against.
		if q.Lo > q.Hi {
			return inequality.Inequality{}, false, fmt.Errorf("%w: %s", ErrUnsatisfiable, q.Cells)
		}
		s.ineqs[q.Cells] = q
		s.indexBits(q.Cells)
		s.assignGroup(q)

		return q, true, nil
	}

	merged, err := inequality.Meet(existing, q)
	if err != nil {
		return inequality.Inequality{}, false, fmt.Errorf("%w: %s", ErrUnsatisfiable, q.Cells)
	}

	changed := merged != existing
	s.ineqs[q.Cells] = merged
	if changed {
		s.assignGroup(merged)
	}

	return merged, changed, nil
}

// Pop removes the inequality keyed by cells from ineqs, bitIndex, and its
// status group. It is a no-op if cells is not present.
func (s *Store) Pop(cells cellset.CellSet) (inequality.Inequality, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, found := s.ineqs[cells]
	if !found {
		return inequality.Inequality{}, false
	}

	delete(s.ineqs, cells)
	s.unindexBits(cells)
	s.removeFromGroup(cells)

	return q, true
}

// Get returns the canonical inequality keyed by cells, if present.
func (s *Store) Get(cells cellset.CellSet) (inequality.Inequality, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, found := s.ineqs[cells]

	return q, found
}

// Len returns the number of distinct inequalities currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ineqs)
}

// Keys returns the CellSet keys currently in group g, as a fresh slice safe
// for the caller to mutate.
func (s *Store) Keys(g Group) []cellset.CellSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.groups[g]
	out := make([]cellset.CellSet, 0, len(set))
	for k := range set {
		out = append(out, k)
	}

	return out
}

// GroupLen returns the number of keys in group g.
func (s *Store) GroupLen(g Group) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.groups[g])
}

// Overlapping returns the keys in group g whose CellSet shares at least one
// bit with cells, discovered via bitIndex in time proportional to overlap.
func (s *Store) Overlapping(g Group, cells cellset.CellSet) []cellset.CellSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[cellset.CellSet]struct{})
	for _, bit := range cells.Bits() {
		for k := range s.bitIndex[bit] {
			if _, ok := s.groups[g][k]; !ok {
				continue
			}
			seen[k] = struct{}{}
		}
	}
	out := make([]cellset.CellSet, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}

	return out
}

// KeysWithBit returns the keys in group g whose CellSet contains bit.
func (s *Store) KeysWithBit(g Group, bit int) []cellset.CellSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if bit < 0 || bit >= cellset.MaxCells {
		return nil
	}
	out := make([]cellset.CellSet, 0)
	for k := range s.bitIndex[bit] {
		if _, ok := s.groups[g][k]; ok {
			out = append(out, k)
		}
	}

	return out
}

// MarkStale moves cells from Exact or Inexact into Stale. It is a no-op for
// keys not currently Exact or Inexact (in particular, it never promotes a
// Trivial key, which only the driver's trivial stage may consume).
func (s *Store) MarkStale(cells cellset.CellSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groupOf[cells]
	if !ok || (g != Exact && g != Inexact) {
		return
	}
	delete(s.groups[g], cells)
	s.groups[Stale][cells] = struct{}{}
	s.groupOf[cells] = Stale
}

// assignGroup places q's key into the correct status group, removing it from
// any group it previously belonged to. Trivial is sticky: once trivial,
// re-tightening keeps it trivial (bounds can only tighten further).
func (s *Store) assignGroup(q inequality.Inequality) {
	s.removeFromGroupLocked(q.Cells)

	var g Group
	switch {
	case q.Trivial():
		g = Trivial
	case q.Exact():
		g = Exact
	default:
		g = Inexact
	}
	s.groups[g][q.Cells] = struct{}{}
	s.groupOf[q.Cells] = g
}

func (s *Store) removeFromGroup(cells cellset.CellSet) {
	s.removeFromGroupLocked(cells)
}

func (s *Store) removeFromGroupLocked(cells cellset.CellSet) {
	if g, ok := s.groupOf[cells]; ok {
		delete(s.groups[g], cells)
		delete(s.groupOf, cells)
	}
}

func (s *Store) indexBits(cells cellset.CellSet) {
	for _, bit := range cells.Bits() {
		s.bitIndex[bit][cells] = struct{}{}
	}
}

func (s *Store) unindexBits(cells cellset.CellSet) {
	for _, bit := range cells.Bits() {
		delete(s.bitIndex[bit], cells)
	}
}
