package game

import "math/rand/v2"

// npcBet sizes an NPC's stake around the table minimum according to its
// personality, then clamps to available chips. A low roll occasionally
// drops any NPC to a half-minimum token bet.
func npcBet(a *Agent, minBet, streak int, rng *rand.Rand) int {
	roll := rng.IntN(100)
	extra := 0
	switch a.Personality {
	case Conservative:
		// Rarely raises.
		if roll > 90 && a.Chips > minBet {
			extra = minBet / 2
		}
	case Aggressive:
		// Frequently over-bets.
		if roll > 40 && a.Chips > minBet {
			extra = minBet
		}
	case Analytical:
		// Presses a winning streak, occasionally doubles.
		if streak > 1 && a.Chips > minBet {
			extra = minBet / 2
		}
		if roll > 95 && a.Chips > minBet*2 {
			extra = minBet * 2
		}
	case Erratic:
		if roll%2 == 0 {
			extra = roll % (minBet + 1)
		}
	}

	bet := minBet + extra
	if bet > a.Chips {
		bet = a.Chips
	}
	if roll < 6 && a.Chips >= 1 {
		bet = max(1, minBet/2)
	}
	if bet > a.Chips {
		bet = a.Chips
	}
	if bet < 1 {
		bet = 1
	}
	return bet
}

// clampBet forces a requested stake into [1, chips].
func clampBet(requested, chips int) int {
	if requested < 1 {
		requested = 1
	}
	if requested > chips {
		requested = chips
	}
	return requested
}
