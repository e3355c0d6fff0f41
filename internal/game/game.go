package game

import (
	"context"
	"sync"

	"go-sweep/internal/state"
)

// Game encapsulates the core game logic, independent of the UI. Every
// intent runs to completion under one lock and answers with a snapshot.
type Game struct {
	State *state.State

	mu sync.Mutex
}

// NewGame initializes a new, unstarted game.
func NewGame(opts state.GameOptions) *Game {
	return &Game{
		State: state.NewState(opts),
	}
}

// Open opens cell i. The first open of a game lays out the mines around it.
// Opening a flagged or open cell, or any cell once the game is over, does
// nothing.
func (g *Game) Open(i int) state.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.State.Board.MustContain(i)
	if g.State.CanOpen(i) {
		g.State.Fire(context.Background(), "open", i)
	}
	return g.State.Snapshot()
}

// ToggleFlag flags or unflags closed cell i. Flags may be placed before the
// board exists.
func (g *Game) ToggleFlag(i int) state.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.State.Board.MustContain(i)
	if g.State.CanFlag(i) {
		g.State.Fire(context.Background(), "flag", i)
	}
	return g.State.Snapshot()
}

// Restart discards the board, flags and counters.
func (g *Game) Restart() state.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.State.Fire(context.Background(), "restart")
	return g.State.Snapshot()
}

// Tick advances the elapsed counter by one second while the game is being
// played and is ignored otherwise.
func (g *Game) Tick() state.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.State.Fire(context.Background(), "tick")
	return g.State.Snapshot()
}

// Snapshot returns the current state without changing it.
func (g *Game) Snapshot() state.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.State.Snapshot()
}
