package board

import (
	"fmt"
	"math/rand/v2"
)

// Generate places mineCount mines on b, none of which is at first or next
// to it, and fills in every other cell's adjacency count. Flags already on
// the board are kept: they belong to the cell, not to its kind.
func (b *Board) Generate(first, mineCount int, r *rand.Rand) {
	b.MustContain(first)

	safe := make([]bool, b.Len())
	for _, i := range b.SafeZone(first) {
		safe[i] = true
	}

	/*
	 * Write down every cell outside the safe zone, then pick mineCount off
	 * the list, swapping each pick out of the live range so it can't be
	 * drawn twice.
	 */
	candidates := make([]int, 0, b.Len())
	for i := range b.Cells {
		b.Cells[i].Kind = Empty
		if !safe[i] {
			candidates = append(candidates, i)
		}
	}
	if mineCount > len(candidates) {
		panic(fmt.Sprintf("board: %d mines do not fit outside a %d-cell safe zone on %d cells",
			mineCount, b.Len()-len(candidates), b.Len()))
	}

	k := len(candidates)
	for range mineCount {
		n := r.IntN(k)
		b.place(candidates[n])
		k--
		candidates[n] = candidates[k]
	}
}

func (b *Board) place(i int) {
	b.Cells[i].Kind = Mine
	for _, j := range b.Neighbors(i) {
		if !b.Cells[j].Kind.IsMine() {
			b.Cells[j].Kind++
		}
	}
}
