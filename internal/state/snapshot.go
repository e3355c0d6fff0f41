package state

import (
	"fmt"

	"go-sweep/internal/board"
)

// Phase is the externally visible stage of a game.
type Phase int

const (
	PhaseUnstarted Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseUnstarted:
		return Unstarted
	case PhasePlaying:
		return Playing
	case PhaseWon:
		return Won
	case PhaseLost:
		return Lost
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Finished reports whether the phase is terminal.
func (p Phase) Finished() bool {
	return p == PhaseWon || p == PhaseLost
}

// CellView is the read-only face of a cell. Value is only filled in once
// the cell is opened; closed cells always report board.Empty.
type CellView struct {
	Index   int
	Opened  bool
	Flagged bool
	Value   board.Kind
}

// Display returns the text shown on an opened cell: "" for an empty cell,
// the count for a numbered one and "*" for a mine.
func (c CellView) Display() string {
	if !c.Opened || c.Value == board.Empty {
		return ""
	}
	return c.Value.String()
}

// Sound returns the sound category of an opened cell.
func (c CellView) Sound() Sound {
	if !c.Opened {
		return SoundNone
	}
	return soundOf(c.Value)
}

// Snapshot is an immutable copy of a game handed to the presentation layer.
type Snapshot struct {
	Rows           int
	Cols           int
	Cells          []CellView
	Phase          Phase
	MinesRemaining int
	ElapsedSeconds int
	Sound          Sound
}

// Phase maps the machine's current state to a Phase. Transient states are
// never current between intents, so meeting one here is a bug.
func (s State) Phase() Phase {
	switch cur := s.FSM.Current(); cur {
	case Unstarted:
		return PhaseUnstarted
	case Playing:
		return PhasePlaying
	case Won:
		return PhaseWon
	case Lost:
		return PhaseLost
	default:
		panic("state: snapshot taken in transient state " + cur)
	}
}

func (s State) Snapshot() Snapshot {
	cells := make([]CellView, len(s.Board.Cells))
	for i, c := range s.Board.Cells {
		v := CellView{Index: i, Opened: c.Opened, Flagged: c.Flagged}
		if c.Opened {
			v.Value = c.Kind
		}
		cells[i] = v
	}
	return Snapshot{
		Rows:           s.Board.Rows,
		Cols:           s.Board.Cols,
		Cells:          cells,
		Phase:          s.Phase(),
		MinesRemaining: s.MinesLeft,
		ElapsedSeconds: s.Elapsed,
		Sound:          s.Sound,
	}
}

// OpenedCount counts the opened cells in the snapshot.
func (s Snapshot) OpenedCount() int {
	n := 0
	for _, c := range s.Cells {
		if c.Opened {
			n++
		}
	}
	return n
}

// FormatElapsed renders elapsed seconds as a zero padded three digit
// counter, e.g. "007", clamped to "999".
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%03d", min(max(seconds, 0), 999))
}
