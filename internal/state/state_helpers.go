package state

import "go-sweep/internal/board"

// Sound is the category of noise an open makes, keyed on what was opened.
type Sound int

const (
	SoundNone Sound = iota
	SoundEmpty
	SoundNumbered
	SoundMine
)

func (s Sound) String() string {
	switch s {
	case SoundEmpty:
		return "empty"
	case SoundNumbered:
		return "numbered"
	case SoundMine:
		return "mine"
	default:
		return "none"
	}
}

func soundOf(k board.Kind) Sound {
	switch {
	case k.IsMine():
		return SoundMine
	case k == board.Empty:
		return SoundEmpty
	default:
		return SoundNumbered
	}
}

func (s State) IsFinished() bool {
	return s.FSM.Is(Won) || s.FSM.Is(Lost)
}

// CanOpen reports whether opening i would change anything.
func (s State) CanOpen(i int) bool {
	c := s.Board.Cell(i)
	return !s.IsFinished() && !c.Flagged && !c.Opened
}

// CanFlag reports whether toggling the flag on i would change anything.
func (s State) CanFlag(i int) bool {
	return !s.IsFinished() && !s.Board.Cell(i).Opened
}
