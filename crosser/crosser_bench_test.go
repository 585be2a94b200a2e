package crosser_test

import (
	"testing"

	"github.com/katalvlaran/mineprop/cellset"
	"github.com/katalvlaran/mineprop/constraintstore"
	"github.com/katalvlaran/mineprop/crosser"
	"github.com/katalvlaran/mineprop/inequality"
)

// chainOfOverlappingIneqs builds N inequalities over a sliding two-cell
// window {i, i+1}, each overlapping its neighbors at exactly one cell —
// the shape CrossAllPairs's bit-indexed scan is meant to exploit.
func chainOfOverlappingIneqs(n int) []cellset.CellSet {
	keys := make([]cellset.CellSet, 0, n)
	for i := 0; i+1 < cellset.MaxCells && len(keys) < n; i++ {
		keys = append(keys, cellset.MustNew(i, i+1))
	}

	return keys
}

// BenchmarkCrossAllPairs_Chain measures CrossAllPairs over a chain of
// pairwise-overlapping two-cell inequalities, mirroring the adjacency a real
// board produces along a row of cells.
func BenchmarkCrossAllPairs_Chain(b *testing.B) {
	const n = 100
	keys := chainOfOverlappingIneqs(n)
	guard := inequality.DefaultGuard()

	b.ReportAllocs()
	b.SetBytes(int64(len(keys)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		store := constraintstore.New()
		for _, k := range keys {
			q, err := inequality.New(k, 1, 1)
			if err != nil {
				b.Fatalf("build inequality: %v", err)
			}
			if _, _, err := store.Add(q); err != nil {
				b.Fatalf("Add: %v", err)
			}
		}

		if _, err := crosser.CrossAllPairs(store, keys, keys, guard); err != nil {
			b.Fatalf("CrossAllPairs: %v", err)
		}
	}
}

// BenchmarkCrossAllPairs_SingleSharedCell measures the worst-case fan-out:
// every inequality shares one common cell, so a single bit bucket holds all
// of them and every pair gets visited.
func BenchmarkCrossAllPairs_SingleSharedCell(b *testing.B) {
	const n = 30
	keys := make([]cellset.CellSet, n)
	for i := 0; i < n; i++ {
		keys[i] = cellset.MustNew(0, i+1)
	}
	guard := inequality.DefaultGuard()

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		store := constraintstore.New()
		for _, k := range keys {
			q, err := inequality.New(k, 1, 1)
			if err != nil {
				b.Fatalf("build inequality: %v", err)
			}
			if _, _, err := store.Add(q); err != nil {
				b.Fatalf("Add: %v", err)
			}
		}

		if _, err := crosser.CrossAllPairs(store, keys, keys, guard); err != nil {
			b.Fatalf("CrossAllPairs: %v", err)
		}
	}
}
