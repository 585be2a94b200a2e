package minesolver_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mineprop/minesolver"
)

// ExampleSolve demonstrates solving the 8-cell toy board: a `. * . * ? . . ?`
// layout with three cells already revealed and a single total-mine-count hint.
func ExampleSolve() {
	board := minesolver.Board{
		Cells: []minesolver.CellSpec{
			{ID: 0, Role: minesolver.RoleEmpty, Neighbors: []int{1, 4, 5}},
			{ID: 1, Role: minesolver.RoleMined, Neighbors: []int{0, 2, 4, 5, 6}},
			{ID: 2, Role: minesolver.RoleEmpty, Neighbors: []int{1, 3, 5, 6, 7}},
			{ID: 3, Role: minesolver.RoleMined, Neighbors: []int{2, 6, 7}},
			{ID: 4, Role: minesolver.RoleUnknown, Neighbors: []int{0, 1, 5}},
			{ID: 5, Role: minesolver.RoleEmpty, Neighbors: []int{0, 1, 2, 4, 6}},
			{ID: 6, Role: minesolver.RoleEmpty, Neighbors: []int{1, 2, 3, 5, 7}},
			{ID: 7, Role: minesolver.RoleUnknown, Neighbors: []int{2, 3, 6}},
		},
		Revealed: []int{0, 5, 7},
		Constraints: []minesolver.GroupConstraint{
			{Count: 2, IDs: []int{0, 1, 2, 3, 4, 5, 6, 7}},
		},
	}

	res, err := minesolver.Solve(board, minesolver.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	revealed := append([]int(nil), res.Revealed...)
	flagged := append([]int(nil), res.Flagged...)
	sort.Ints(revealed)
	sort.Ints(flagged)

	fmt.Println("solved:", res.Solved)
	fmt.Println("revealed:", revealed)
	fmt.Println("flagged:", flagged)
	// Output:
	// solved: true
	// revealed: [0 2 4 5 6 7]
	// flagged: [1 3]
}
