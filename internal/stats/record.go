// Package stats owns the durable per-player statistics: the flat-file
// record store, the achievement catalog and the post-settlement pipeline
// that applies round outcomes to it.
package stats

import "sort"

// Record is the durable cumulative state for one identity. Current streak
// resets to zero on any non-win; best streak never decreases.
type Record struct {
	Wins          int
	Losses        int
	Ties          int
	BestStreak    int
	CurrentStreak int
	BiggestWin    int
	TotalGames    int
	Blackjacks    int
	Achievements  map[string]bool
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{Achievements: make(map[string]bool)}
}

// Unlocked reports whether the achievement id is already held.
func (r *Record) Unlocked(id string) bool {
	return r.Achievements[id]
}

// Unlock adds an achievement id; re-unlocking is a no-op. Returns true when
// the id is newly added.
func (r *Record) Unlock(id string) bool {
	if r.Achievements == nil {
		r.Achievements = make(map[string]bool)
	}
	if r.Achievements[id] {
		return false
	}
	r.Achievements[id] = true
	return true
}

// AchievementIDs returns the unlocked ids in sorted order.
func (r *Record) AchievementIDs() []string {
	ids := make([]string, 0, len(r.Achievements))
	for id := range r.Achievements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RecordWin applies a winning round: win counter, streaks and biggest-payout
// watermark.
func (r *Record) RecordWin(payout int) {
	r.Wins++
	r.TotalGames++
	r.CurrentStreak++
	if r.CurrentStreak > r.BestStreak {
		r.BestStreak = r.CurrentStreak
	}
	if payout > r.BiggestWin {
		r.BiggestWin = payout
	}
}

// RecordLoss applies a non-winning round and resets the streak.
func (r *Record) RecordLoss() {
	r.Losses++
	r.TotalGames++
	r.CurrentStreak = 0
}
