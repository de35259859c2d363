package game

// Snapshot is the settlement-relevant view of one agent at the end of a
// round. Settlement works on snapshots and index sets rather than live
// agents so it can be tested against plain literals.
type Snapshot struct {
	Name      string
	Human     bool
	Bet       int
	Value     int
	Busted    bool
	Stood     bool
	Blackjack bool
}

// AgentOutcome is one agent's settled result for a round.
type AgentOutcome struct {
	Name       string
	Human      bool
	Bet        int
	FinalValue int
	Busted     bool
	Stood      bool
	Blackjack  bool
	Winner     bool
	Payout     int
	ChipsAfter int
}

// Outcome is the settled result of one round, handed to the stats pipeline
// and the presentation layer.
type Outcome struct {
	Round   int
	Pot     int
	Agents  []AgentOutcome
	Winners []int // indices into Agents
}

// EveryoneBusted reports whether the round had no winners.
func (o *Outcome) EveryoneBusted() bool {
	return len(o.Winners) == 0
}

// HumanWon reports whether the human seat is in the winner set.
func (o *Outcome) HumanWon() bool {
	for _, i := range o.Winners {
		if o.Agents[i].Human {
			return true
		}
	}
	return false
}

// DetermineWinners returns the indices of every non-busted snapshot whose
// value equals the maximum value not exceeding 21. Agents that sat out
// (zero bet, no cards) are not considered. An all-bust round returns an
// empty set.
func DetermineWinners(snaps []Snapshot) []int {
	best := 0
	for _, s := range snaps {
		if s.Busted || s.Bet == 0 {
			continue
		}
		if s.Value > best && s.Value <= 21 {
			best = s.Value
		}
	}
	if best == 0 {
		return nil
	}
	var winners []int
	for i, s := range snaps {
		if s.Busted || s.Bet == 0 {
			continue
		}
		if s.Value == best {
			winners = append(winners, i)
		}
	}
	return winners
}

// PayoutFor computes one winner's payout. A natural blackjack returns the
// stake plus 1.5x profit; any other win returns the stake plus even profit.
// The zero-stake fallback splits the pot equally among winners; it is
// unreachable while every dealt-in agent stakes at least 1, but a legitimate
// settlement input, not an error.
func PayoutFor(s Snapshot, pot, winnerCount int) int {
	if s.Bet <= 0 {
		if winnerCount <= 0 {
			return 0
		}
		return pot / winnerCount
	}
	if s.Blackjack {
		return s.Bet + s.Bet*3/2
	}
	return s.Bet * 2
}
