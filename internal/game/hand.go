package game

import (
	"strings"

	"github.com/jmguzman/blackjack/internal/deck"
)

// Hand is the ordered sequence of cards held by one agent for one round.
type Hand []deck.Card

// Value returns the blackjack value of the hand: ranks are summed with aces
// counted as 11, then while the total exceeds 21 each ace in turn is
// re-counted as 1. The result is order-independent.
func (h Hand) Value() int {
	total, aces := 0, 0
	for _, c := range h {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsBlackjack reports whether the hand is a natural blackjack: exactly two
// cards totalling 21.
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Value() == 21
}

// IsSoft reports whether at least one ace is still counted as 11 under the
// current total.
func (h Hand) IsSoft() bool {
	total, aces := 0, 0
	for _, c := range h {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return aces > 0
}

// IsBust reports whether the hand value exceeds 21.
func (h Hand) IsBust() bool {
	return h.Value() > 21
}

// String returns the short card list (e.g. "A♠ 10♦").
func (h Hand) String() string {
	if len(h) == 0 {
		return "(no cards)"
	}
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Longform returns the spoken card list (e.g. "Ace of Spades, 10 of Diamonds").
func (h Hand) Longform() string {
	if len(h) == 0 {
		return "(no cards)"
	}
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.Longform()
	}
	return strings.Join(parts, ", ")
}
