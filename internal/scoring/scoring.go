// Package scoring keeps an in-memory tally of finished games: wins, losses,
// streaks and clear times.
package scoring

import (
	"time"
)

// Scoring tallies the games finished during one run of the program.
type Scoring struct {
	// public
	Wins   int
	Losses int
	Streak int // consecutive wins ending with the last game

	// private
	history ScoreHistory
	newBest bool
	now     func() time.Time
}

// InitScoring returns an empty tally.
func InitScoring() *Scoring {
	return &Scoring{now: time.Now}
}

// Record adds a finished game.
func (s *Scoring) Record(won bool, seconds int) {
	entry := ScoreHistoryEntry{
		Won:       won,
		Seconds:   seconds,
		Timestamp: s.now().Format(time.RFC3339),
	}
	s.history.Entries = append(s.history.Entries, entry)
	s.history.LastEntry = &entry
	s.newBest = false

	if !won {
		s.Losses++
		s.Streak = 0
		return
	}

	s.Wins++
	s.Streak++
	if best := s.history.BestEntry; best == nil || seconds < best.Seconds {
		s.history.BestEntry = &entry
		s.newBest = true
	}
}

// GetBestTime returns the fastest clear, if any game has been won.
func (s *Scoring) GetBestTime() (int, bool) {
	if best := s.history.GetBestEntry(); best != nil {
		return best.Seconds, true
	}
	return 0, false
}

// GotBestTime reports whether the last game recorded set a new best time.
func (s *Scoring) GotBestTime() bool {
	return s.newBest
}

func (s *Scoring) GetPlayed() int {
	return len(s.history.Entries)
}

func (s *Scoring) GetLast() *ScoreHistoryEntry {
	return s.history.LastEntry
}

func (s *Scoring) GetNFastest(n int) []ScoreHistoryEntry {
	return s.history.GetNFastest(n)
}
