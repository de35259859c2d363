package stats

import (
	"github.com/charmbracelet/log"

	"github.com/jmguzman/blackjack/internal/game"
)

// Unlock is one newly earned achievement.
type Unlock struct {
	Agent       string
	Human       bool
	ID          string
	Description string
}

// Tracker is the post-settlement pipeline: it applies a round outcome to
// the durable records, evaluates achievements and persists. A failed write
// is a warning, not an error; play continues without durability for that
// round.
type Tracker struct {
	store  *Store
	logger *log.Logger
}

// NewTracker wraps a loaded store.
func NewTracker(store *Store, logger *log.Logger) *Tracker {
	return &Tracker{store: store, logger: logger.WithPrefix("tracker")}
}

// Store exposes the underlying record store for the profiles menu.
func (t *Tracker) Store() *Store {
	return t.store
}

// CurrentStreak implements game.RecordsView.
func (t *Tracker) CurrentStreak(name string) int {
	return t.store.CurrentStreak(name)
}

// ApplyRound updates every bettor's record from the outcome, evaluates
// achievements against the updated records, persists the store and returns
// any new unlocks in roster order.
func (t *Tracker) ApplyRound(out *game.Outcome) []Unlock {
	opponentHeld := opponentValues(out)

	var unlocks []Unlock
	for i, ao := range out.Agents {
		if ao.Bet == 0 {
			continue
		}
		rec := t.store.Get(ao.Name)
		if ao.Winner {
			rec.RecordWin(ao.Payout)
		} else {
			rec.RecordLoss()
		}
		if ao.Blackjack {
			rec.Blackjacks++
		}

		facts := RoundFacts{
			Won:                ao.Winner,
			Payout:             ao.Payout,
			FinalValue:         ao.FinalValue,
			Busted:             ao.Busted,
			Stood:              ao.Stood,
			Blackjack:          ao.Blackjack,
			ChipsAfter:         ao.ChipsAfter,
			OpponentHeld20or21: opponentHeld[i],
		}
		for _, id := range Evaluate(rec, facts) {
			unlocks = append(unlocks, Unlock{
				Agent:       ao.Name,
				Human:       ao.Human,
				ID:          id,
				Description: Catalog[id],
			})
		}
	}

	if err := t.store.Save(); err != nil {
		t.logger.Warn("cannot save player stats", "error", err)
	}
	return unlocks
}

// opponentValues reports, per agent index, whether some other agent
// finished the round holding 20 or 21.
func opponentValues(out *game.Outcome) []bool {
	held := make([]bool, len(out.Agents))
	for i := range out.Agents {
		for j, other := range out.Agents {
			if i == j || other.Bet == 0 {
				continue
			}
			if other.FinalValue == 20 || other.FinalValue == 21 {
				held[i] = true
				break
			}
		}
	}
	return held
}
