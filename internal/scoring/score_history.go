package scoring

import (
	"sort"
)

// ScoreHistory holds every game finished in this session.
type ScoreHistory struct {
	Entries   []ScoreHistoryEntry
	BestEntry *ScoreHistoryEntry
	LastEntry *ScoreHistoryEntry
}

// ScoreHistoryEntry is the outcome of a single game.
type ScoreHistoryEntry struct {
	Won       bool
	Seconds   int
	Timestamp string
}

// GetBestEntry returns the fastest win, or nil before the first win.
func (sh ScoreHistory) GetBestEntry() *ScoreHistoryEntry {
	return sh.BestEntry
}

// GetNFastest returns up to n wins, fastest first; none for n <= 0. Ties keep the order
// they were played in.
func (sh ScoreHistory) GetNFastest(n int) []ScoreHistoryEntry {
	wins := make([]ScoreHistoryEntry, 0, len(sh.Entries))
	for _, e := range sh.Entries {
		if e.Won {
			wins = append(wins, e)
		}
	}

	sort.SliceStable(wins, func(i, j int) bool {
		return wins[i].Seconds < wins[j].Seconds
	})

	return wins[:min(max(n, 0), len(wins))]
}
