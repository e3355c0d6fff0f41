package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"go-sweep/internal/board"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"
)

// Phases a game settles in between intents.
const (
	Unstarted = "unstarted"
	Playing   = "playing"
	Won       = "won"
	Lost      = "lost"

	// transient, only seen from inside callbacks
	generating = "generating"
	opening    = "opening"
)

// Clock is told when elapsed time should start and stop advancing. The
// ticking itself is driven from outside through the "tick" event.
type Clock interface {
	Start()
	Stop()
}

type nopClock struct{}

func (nopClock) Start() {}
func (nopClock) Stop()  {}

// GameOptions configures a State. Zero values fall back to the standard
// board, a time-seeded generator, a no-op clock and a discarding logger.
type GameOptions struct {
	Geometry  board.Geometry
	MineCount int
	Verify    bool // panic if a generated board fails board.Verify
	Rand      *rand.Rand
	Clock     Clock
	Logger    *log.Logger
}

type State struct {
	Board     *board.Board
	FSM       *fsm.FSM
	MinesLeft int   // MineCount minus flagged cells, may go negative
	Elapsed   int   // seconds spent in Playing
	Sound     Sound // category of the cell most recently opened by the player
	Options   GameOptions
}

func NewState(opts GameOptions) *State {
	if opts.Geometry == (board.Geometry{}) {
		opts.Geometry = board.Standard
	}
	if opts.MineCount == 0 {
		opts.MineCount = board.MineCount
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.Clock == nil {
		opts.Clock = nopClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &State{
		Board:     board.New(opts.Geometry),
		MinesLeft: opts.MineCount,
		Options:   opts,
	}

	s.FSM = fsm.NewFSM(
		Unstarted,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Fire sends event to the state machine. Rejected, cancelled and self
// transitions are the machine's way of expressing a no-op intent and are
// swallowed; anything else means the transition table is broken.
func (s *State) Fire(ctx context.Context, event string, args ...any) {
	err := s.FSM.Event(ctx, event, args...)
	if err == nil {
		return
	}

	var (
		invalid  fsm.InvalidEventError
		canceled fsm.CanceledError
		noop     fsm.NoTransitionError
	)
	if errors.As(err, &invalid) || errors.As(err, &canceled) || errors.As(err, &noop) {
		return
	}
	panic(fmt.Sprintf("state: %s in %s: %v", event, s.FSM.Current(), err))
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		// Opening a cell. The first open builds the board around it.
		{Name: "open", Src: []string{Unstarted}, Dst: generating},
		{Name: "generated", Src: []string{generating}, Dst: opening},
		{Name: "open", Src: []string{Playing}, Dst: opening},

		// Outcome of an open
		{Name: "explode", Src: []string{opening}, Dst: Lost},
		{Name: "clear", Src: []string{opening}, Dst: Won},
		{Name: "settle", Src: []string{opening}, Dst: Playing},

		// Flags stay put; the work happens in before_flag.
		{Name: "flag", Src: []string{Unstarted}, Dst: Unstarted},
		{Name: "flag", Src: []string{Playing}, Dst: Playing},

		{Name: "tick", Src: []string{Playing}, Dst: Playing},

		{Name: "restart", Src: []string{Unstarted, Playing, Won, Lost}, Dst: Unstarted},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"before_open": func(ctx context.Context, e *fsm.Event) {
			c := s.Board.Cell(e.Args[0].(int))
			if c.Flagged || c.Opened {
				e.Cancel()
			}
		},
		"enter_generating": func(ctx context.Context, e *fsm.Event) {
			first := e.Args[0].(int)
			s.Board.Generate(first, s.Options.MineCount, s.Options.Rand)
			if s.Options.Verify {
				if err := s.Board.Verify(s.Options.MineCount); err != nil {
					s.Options.Logger.Error("generated board failed verification", "err", err, "board", s.Board.String())
					panic(err)
				}
			}
			s.Options.Logger.Debug("board generated", "first", first, "mines", s.Options.MineCount)

			s.Options.Clock.Start()
			s.Fire(ctx, "generated", first)
		},
		"enter_opening": func(ctx context.Context, e *fsm.Event) {
			i := e.Args[0].(int)
			c := s.Board.Cell(i)
			c.Opened = true
			s.Sound = soundOf(c.Kind)

			if c.Kind.IsMine() {
				s.Fire(ctx, "explode", i)
				return
			}
			if c.Kind == board.Empty {
				opened := s.Board.Reveal(i)
				s.Board.OpenAll(opened)
				s.Options.Logger.Debug("flood fill", "from", i, "opened", len(opened))
			}

			if s.Board.Cleared(s.Options.MineCount) {
				s.Fire(ctx, "clear")
				return
			}
			s.Fire(ctx, "settle")
		},
		"enter_lost": func(ctx context.Context, e *fsm.Event) {
			s.Board.RevealMines()
			s.Options.Clock.Stop()
			s.Options.Logger.Info("game lost", "mine", e.Args[0], "elapsed", s.Elapsed)
		},
		"enter_won": func(ctx context.Context, e *fsm.Event) {
			s.Options.Clock.Stop()
			s.Options.Logger.Info("game won", "elapsed", s.Elapsed, "flags", s.Board.FlaggedCount())
		},
		"before_flag": func(ctx context.Context, e *fsm.Event) {
			c := s.Board.Cell(e.Args[0].(int))
			if c.Opened {
				e.Cancel()
				return
			}
			c.Flagged = !c.Flagged
			if c.Flagged {
				s.MinesLeft--
			} else {
				s.MinesLeft++
			}
		},
		"before_tick": func(ctx context.Context, e *fsm.Event) {
			s.Elapsed++
		},
		"before_restart": func(ctx context.Context, e *fsm.Event) {
			if e.Src == Playing {
				s.Options.Clock.Stop()
			}
			s.Board = board.New(s.Options.Geometry)
			s.MinesLeft = s.Options.MineCount
			s.Elapsed = 0
			s.Sound = SoundNone
			s.Options.Logger.Debug("restart", "from", e.Src)
		},
	}
}
