package deck

import (
	"math/rand/v2"
)

// Shoe is the card pool for one or more standard 52-card decks: an undealt
// sequence plus a discard pile. Cards dealt out live in agents' hands until
// they are discarded back; within a shoe lifetime no card is duplicated or
// lost.
type Shoe struct {
	undealt []Card
	discard []Card
	decks   int
	rng     *rand.Rand
}

// NewShoe creates a shoe of numDecks standard decks in fixed order, using the
// provided random source for all shuffles. Call Shuffle before play.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	s := &Shoe{rng: rng}
	s.Build(numDecks)
	return s
}

// Build replaces the undealt pile with numDecks full decks in fixed
// rank/suit order and clears the discard pile.
func (s *Shoe) Build(numDecks int) {
	if numDecks < 1 {
		numDecks = 1
	}
	s.decks = numDecks
	s.undealt = make([]Card, 0, 52*numDecks)
	s.discard = s.discard[:0]
	for d := 0; d < numDecks; d++ {
		for suit := Clubs; suit <= Spades; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.undealt = append(s.undealt, NewCard(rank, suit))
			}
		}
	}
}

// Shuffle applies a uniform permutation to the undealt pile.
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.undealt), func(i, j int) {
		s.undealt[i], s.undealt[j] = s.undealt[j], s.undealt[i]
	})
}

// DealOne removes and returns the front card of the undealt pile. It never
// fails: an empty pile folds the discard pile (minus its top card, kept as a
// burn so the card just discarded cannot be dealt straight back) into the
// undealt pile and shuffles; if the discard pile is empty too, a fresh shoe
// is built and shuffled.
func (s *Shoe) DealOne() Card {
	if len(s.undealt) == 0 {
		if len(s.discard) > 0 {
			burn := s.discard[len(s.discard)-1]
			s.undealt = append(s.undealt, s.discard[:len(s.discard)-1]...)
			s.discard = append(s.discard[:0], burn)
			s.Shuffle()
		}
		if len(s.undealt) == 0 {
			s.Build(s.decks)
			s.Shuffle()
		}
	}
	c := s.undealt[0]
	s.undealt = s.undealt[1:]
	return c
}

// Discard pushes a card onto the discard pile.
func (s *Shoe) Discard(c Card) {
	s.discard = append(s.discard, c)
}

// Remaining returns the number of undealt cards, used for the pre-deal
// low-card reshuffle check.
func (s *Shoe) Remaining() int {
	return len(s.undealt)
}

// DiscardCount returns the size of the discard pile.
func (s *Shoe) DiscardCount() int {
	return len(s.discard)
}

// Decks returns the number of 52-card decks the shoe was built from.
func (s *Shoe) Decks() int {
	return s.decks
}
