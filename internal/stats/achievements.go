package stats

import "sort"

// Achievement identifiers. The catalog is fixed for the process lifetime.
const (
	AchBlackjack     = "BLACKJACK"
	AchHighRoller    = "HIGH_ROLLER"
	AchHotStreak     = "HOT_STREAK"
	AchCardShark     = "CARD_SHARK"
	AchSurvivor      = "SURVIVOR"
	AchUnstoppable   = "UNSTOPPABLE"
	AchItHappens     = "IT_HAPPENS"
	AchCloseCall     = "CLOSE_CALL"
	AchAgainstOdds   = "AGAINST_ODDS"
	AchMarathoner    = "MARATHONER"
	AchGamblerSpirit = "GAMBLER_SPIRIT"
)

// Catalog maps achievement identifier to human-readable description.
var Catalog = map[string]string{
	AchBlackjack:     "Natural Blackjack: get a 2-card 21.",
	AchHighRoller:    "Win a round with a payout of 40+ chips.",
	AchHotStreak:     "Win 3 rounds in a row.",
	AchCardShark:     "Win 10 total rounds.",
	AchSurvivor:      "Reach 200 chips.",
	AchUnstoppable:   "Reach 300 chips.",
	AchItHappens:     "Bust badly (22+).",
	AchCloseCall:     "Stand on 20 and still lose.",
	AchAgainstOdds:   "Beat an opponent who had 20 or 21.",
	AchMarathoner:    "Play 20 rounds.",
	AchGamblerSpirit: "Play 50 rounds.",
}

// CatalogIDs returns every achievement id in sorted order.
func CatalogIDs() []string {
	ids := make([]string, 0, len(Catalog))
	for id := range Catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RoundFacts are the per-agent session events one settlement produced, the
// inputs to the achievement predicates beyond the record itself.
type RoundFacts struct {
	Won                bool
	Payout             int
	FinalValue         int
	Busted             bool
	Stood              bool
	Blackjack          bool
	ChipsAfter         int
	OpponentHeld20or21 bool
}

// predicate reports whether an achievement holds for a just-updated record
// and the round's facts. Predicates are stateless and idempotent.
type predicate func(r *Record, f RoundFacts) bool

var predicates = map[string]predicate{
	AchBlackjack:     func(_ *Record, f RoundFacts) bool { return f.Blackjack },
	AchHighRoller:    func(_ *Record, f RoundFacts) bool { return f.Won && f.Payout >= 40 },
	AchHotStreak:     func(r *Record, _ RoundFacts) bool { return r.CurrentStreak >= 3 },
	AchCardShark:     func(r *Record, _ RoundFacts) bool { return r.Wins >= 10 },
	AchSurvivor:      func(_ *Record, f RoundFacts) bool { return f.ChipsAfter >= 200 },
	AchUnstoppable:   func(_ *Record, f RoundFacts) bool { return f.ChipsAfter >= 300 },
	AchItHappens:     func(_ *Record, f RoundFacts) bool { return f.Busted && f.FinalValue >= 22 },
	AchCloseCall:     func(_ *Record, f RoundFacts) bool { return f.Stood && f.FinalValue == 20 && !f.Won },
	AchAgainstOdds:   func(_ *Record, f RoundFacts) bool { return f.Won && f.OpponentHeld20or21 },
	AchMarathoner:    func(r *Record, _ RoundFacts) bool { return r.TotalGames >= 20 },
	AchGamblerSpirit: func(r *Record, _ RoundFacts) bool { return r.TotalGames >= 50 },
}

// Evaluate runs every predicate against the record and facts, unlocking any
// that newly hold. Returns the newly unlocked ids, sorted. Already-unlocked
// ids are never returned again.
func Evaluate(r *Record, f RoundFacts) []string {
	var unlocked []string
	for id, pred := range predicates {
		if r.Unlocked(id) {
			continue
		}
		if pred(r, f) {
			r.Unlock(id)
			unlocked = append(unlocked, id)
		}
	}
	sort.Strings(unlocked)
	return unlocked
}
