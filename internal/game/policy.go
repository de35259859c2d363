package game

import (
	"math/rand/v2"
)

// Personality tags an NPC with its decision heuristic. Dispatch is by tag,
// never by display name, so an identity that happens to contain a
// personality word cannot change behavior.
type Personality int

const (
	// PersonalityNone marks the human seat and any NPC without a known
	// heuristic; such agents fall through to the default hit-below-16 rule.
	PersonalityNone Personality = iota
	Conservative
	Aggressive
	Erratic
	Analytical
)

// String returns the string representation of a personality
func (p Personality) String() string {
	switch p {
	case Conservative:
		return "conservative"
	case Aggressive:
		return "aggressive"
	case Erratic:
		return "erratic"
	case Analytical:
		return "analytical"
	default:
		return "default"
	}
}

// ShouldHit applies the personality's heuristic to a hand. highestUpcard is
// the largest blackjack value among other agents' visible first cards (only
// the analytical policy reads it); rng drives the erratic policy.
func (p Personality) ShouldHit(h Hand, highestUpcard int, rng *rand.Rand) bool {
	switch p {
	case Conservative:
		return h.Value() < 13
	case Aggressive:
		return h.Value() < 20
	case Erratic:
		return rng.IntN(2) == 1
	case Analytical:
		return analyticalShouldHit(h, highestUpcard)
	default:
		return h.Value() < 16
	}
}

// analyticalShouldHit is a basic-strategy-derived rule against the highest
// visible opposing upcard.
func analyticalShouldHit(h Hand, up int) bool {
	hv := h.Value()
	if h.IsSoft() {
		if hv <= 17 {
			return true
		}
		if hv == 18 {
			return up >= 9
		}
		return false
	}
	if hv <= 11 {
		return true
	}
	if hv >= 17 {
		return false
	}
	// Hard 12-16: stand into a likely bust card, otherwise hit.
	return up < 2 || up > 6
}

// HighestUpcard returns the largest blackjack value among the visible first
// cards of every agent except the one at selfIdx. The floor is 2, matching
// the lowest possible upcard.
func HighestUpcard(agents []*Agent, selfIdx int) int {
	highest := 2
	for i, a := range agents {
		if i == selfIdx {
			continue
		}
		if up, ok := a.Upcard(); ok && up.Value() > highest {
			highest = up.Value()
		}
	}
	return highest
}
