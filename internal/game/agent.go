package game

import "github.com/jmguzman/blackjack/internal/deck"

// Kind distinguishes the human seat from computer-controlled seats.
type Kind int

const (
	Human Kind = iota
	NPC
)

// Status is an agent's per-round state.
type Status int

const (
	InPlay Status = iota
	Stood
	Busted
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case InPlay:
		return "PLAY"
	case Stood:
		return "STOOD"
	case Busted:
		return "BUST"
	default:
		return "?"
	}
}

// Agent represents one participant for the game's lifetime. The hand, status
// and current bet reset every round; chips, wager history and speech lines
// persist across rounds.
type Agent struct {
	Name        string
	Kind        Kind
	Personality Personality
	Chips       int
	Hand        Hand
	Status      Status
	Bet         int // stake this round, 0 when sitting out
	LastBet     int
	Wagers      []int // cumulative bet history

	speech []string
}

// NewAgent creates an agent with a starting chip balance.
func NewAgent(name string, kind Kind, personality Personality, chips int) *Agent {
	return &Agent{
		Name:        name,
		Kind:        kind,
		Personality: personality,
		Chips:       chips,
	}
}

// IsHuman returns true for the human-controlled seat.
func (a *Agent) IsHuman() bool {
	return a.Kind == Human
}

// ResetForRound clears the hand and per-round state. Cards still held are
// returned to the caller so the table can push them onto the shoe's discard
// pile.
func (a *Agent) ResetForRound() []deck.Card {
	held := a.Hand
	a.Hand = nil
	a.Status = InPlay
	a.Bet = 0
	return held
}

// Receive appends a dealt card to the hand.
func (a *Agent) Receive(c deck.Card) {
	a.Hand = append(a.Hand, c)
}

// HandValue returns the current blackjack value of the hand.
func (a *Agent) HandValue() int {
	return a.Hand.Value()
}

// Upcard returns the agent's first dealt card and whether one exists. It is
// the only card other agents' policies may inspect.
func (a *Agent) Upcard() (deck.Card, bool) {
	if len(a.Hand) == 0 {
		return deck.Card{}, false
	}
	return a.Hand[0], true
}

// SetSpeech installs the agent's rotating table-talk lines.
func (a *Agent) SetSpeech(lines ...string) {
	a.speech = lines
}

// NextLine returns the agent's next speech line and rotates it to the back.
// Returns "" when the agent has no lines.
func (a *Agent) NextLine() string {
	if len(a.speech) == 0 {
		return ""
	}
	line := a.speech[0]
	a.speech = append(a.speech[1:], line)
	return line
}
