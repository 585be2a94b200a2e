package constraintstore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/mineprop/cellset"
	"github.com/katalvlaran/mineprop/inequality"
)

// Sentinel errors for Store operations.
var (
	// ErrUnsatisfiable is returned by Add when meet-tightening collapses an
	// inequality's bounds (lo > hi). Wrapped with the offending CellSet via
	// fmt.Errorf so callers can report which constraint contradicted another.
	ErrUnsatisfiable = errors.New("constraintstore: unsatisfiable constraint")
)

// Group names one of the four disjoint status partitions a stored key
// belongs to (spec §3).
type Group int

const (
	// Trivial holds keys whose meet-tightened bounds force every cell
	// (Hi == 0 or Lo == Size). Consumed once per round by the driver.
	Trivial Group = iota
	// Exact holds non-trivial keys with Lo == Hi.
	Exact
	// Inexact holds keys with Lo < Hi.
	Inexact
	// Stale holds previously-Exact or previously-Inexact keys already crossed
	// against everything known at the time; only the driver moves keys into
	// Stale (via MarkStale).
	Stale
)

// String renders the Group name for debug traces.
func (g Group) String() string {
	switch g {
	case Trivial:
		return "trivial"
	case Exact:
		return "exact"
	case Inexact:
		return "inexact"
	case Stale:
		return "stale"
	default:
		return fmt.Sprintf("Group(%d)", int(g))
	}
}

// Store is the canonicalizing CellSet -> Inequality map described in doc.go.
type Store struct {
	mu sync.RWMutex

	ineqs    map[cellset.CellSet]inequality.Inequality
	groupOf  map[cellset.CellSet]Group
	groups   map[Group]map[cellset.CellSet]struct{}
	bitIndex [cellset.MaxCells]map[cellset.CellSet]struct{}
}

// New returns an empty Store.
func New() *Store {
	s := &Store{
		ineqs:   make(map[cellset.CellSet]inequality.Inequality),
		groupOf: make(map[cellset.CellSet]Group),
		groups: map[Group]map[cellset.CellSet]struct{}{
			Trivial: make(map[cellset.CellSet]struct{}),
			Exact:   make(map[cellset.CellSet]struct{}),
			Inexact: make(map[cellset.CellSet]struct{}),
			Stale:   make(map[cellset.CellSet]struct{}),
		},
	}
	for i := range s.bitIndex {
		s.bitIndex[i] = make(map[cellset.CellSet]struct{})
	}

	return s
}
