package game

import (
	"go-sweep/internal/scoring"
	"go-sweep/internal/state"
)

// Session runs consecutive games on one board configuration and tallies
// their results.
type Session struct {
	CurrentGame *Game
	GameOptions state.GameOptions
	Score       *scoring.Scoring

	recorded bool // current game's result is already in Score
}

func NewSession(opts state.GameOptions) *Session {
	return &Session{
		CurrentGame: NewGame(opts),
		GameOptions: opts,
		Score:       scoring.InitScoring(),
	}
}

// Update syncs the tally with the current game. Call it after every
// intent; a finished game is recorded exactly once.
func (s *Session) Update() {
	if s.CurrentGame == nil || s.recorded {
		return
	}

	snap := s.CurrentGame.Snapshot()
	if !snap.Phase.Finished() {
		return
	}
	s.Score.Record(snap.Phase == state.PhaseWon, snap.ElapsedSeconds)
	s.recorded = true
}

// Restart starts a fresh game. An unfinished game is abandoned without
// being recorded.
func (s *Session) Restart() state.Snapshot {
	s.recorded = false
	return s.CurrentGame.Restart()
}
