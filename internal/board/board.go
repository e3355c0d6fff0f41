// Package board holds the minesweeper grid: its geometry, mine placement and
// the flood fill that opens connected empty cells.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInconsistent is wrapped by Verify when a board breaks its invariants.
var ErrInconsistent = errors.New("board: inconsistent")

// Kind is what a cell holds: Mine, or the number of mine-bearing neighbors
// (0 to 8). A count of 0 is an Empty cell and seeds a flood fill.
type Kind int8

const (
	Mine  Kind = -1
	Empty Kind = 0
)

func (k Kind) IsMine() bool {
	return k == Mine
}

// Count returns the adjacency count, or 0 for a mine.
func (k Kind) Count() int {
	if k.IsMine() {
		return 0
	}
	return int(k)
}

func (k Kind) String() string {
	switch {
	case k == Mine:
		return "*"
	case k == Empty:
		return "."
	case 1 <= k && k <= 8:
		return strconv.Itoa(int(k))
	default:
		return "!"
	}
}

// Cell is one square of the board. Opened never reverts once set; Flagged
// only changes while the cell is closed.
type Cell struct {
	Kind    Kind
	Opened  bool
	Flagged bool
}

// Board is an ordered run of Rows*Cols cells. Kinds stay Empty until
// Generate runs, but flags can be placed before that.
type Board struct {
	Geometry
	Cells []Cell
}

// New returns a closed, unflagged, ungenerated board.
func New(g Geometry) *Board {
	return &Board{
		Geometry: g,
		Cells:    make([]Cell, g.Len()),
	}
}

// Cell returns a pointer to the cell at i.
func (b *Board) Cell(i int) *Cell {
	b.MustContain(i)
	return &b.Cells[i]
}

// OpenAll marks every index in indices as opened.
func (b *Board) OpenAll(indices []int) {
	for _, i := range indices {
		b.Cells[i].Opened = true
	}
}

// RevealMines force-opens every mined cell and returns their indices.
// Flags are left untouched.
func (b *Board) RevealMines() []int {
	var mines []int
	for i := range b.Cells {
		if b.Cells[i].Kind.IsMine() {
			b.Cells[i].Opened = true
			mines = append(mines, i)
		}
	}
	return mines
}

func (b *Board) OpenedCount() int {
	n := 0
	for _, c := range b.Cells {
		if c.Opened {
			n++
		}
	}
	return n
}

func (b *Board) FlaggedCount() int {
	n := 0
	for _, c := range b.Cells {
		if c.Flagged {
			n++
		}
	}
	return n
}

// Cleared reports whether every cell except the mines is open.
func (b *Board) Cleared(mineCount int) bool {
	return b.OpenedCount() == b.Len()-mineCount
}

// Verify checks that the board holds exactly mineCount mines and that every
// other cell's count matches its mined neighbors.
func (b *Board) Verify(mineCount int) error {
	mines := 0
	for i, c := range b.Cells {
		if c.Kind.IsMine() {
			mines++
			continue
		}
		want := 0
		for _, j := range b.Neighbors(i) {
			if b.Cells[j].Kind.IsMine() {
				want++
			}
		}
		if int(c.Kind) != want {
			return fmt.Errorf("%w: cell %d counts %d mines, has %d", ErrInconsistent, i, c.Kind, want)
		}
	}
	if mines != mineCount {
		return fmt.Errorf("%w: %d mines placed, want %d", ErrInconsistent, mines, mineCount)
	}
	return nil
}

// String renders every cell's kind regardless of whether it is open.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.Rows {
		for col := range b.Cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Cells[b.Index(row, col)].Kind.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
