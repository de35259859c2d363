package game

import (
	"errors"

	"github.com/jmguzman/blackjack/internal/deck"
)

// PlayerAction is a choice made by the human agent during their turn.
type PlayerAction int

const (
	ActionHit PlayerAction = iota
	ActionStand
	ActionDiscard // remove the last-drawn card to the shoe's discard pile
	ActionQuit
)

// ErrQuit is returned by PlayRound when the human quits mid-round. The
// caller must flush any pending persistence before exiting.
var ErrQuit = errors.New("player quit")

// Controller supplies the human agent's blocking decisions. Input parsing
// and re-prompting live behind this interface; the engine clamps whatever
// comes back into a legal range.
type Controller interface {
	// PlaceBet asks for a stake between 1 and max. ok=false means the
	// player gave no usable amount and the engine should fall back to the
	// default (last bet, or table minimum).
	PlaceBet(a *Agent, def, max int) (amount int, ok bool)

	// ChooseAction asks for the next turn action.
	ChooseAction(a *Agent) PlayerAction
}

// Observer receives engine events for presentation. The engine exposes full
// per-agent state; concealment (upcard mode) is the observer's business.
type Observer interface {
	RoundStarted(round int, agents []*Agent)
	BetPlaced(a *Agent, amount int)
	CardDealt(a *Agent, c deck.Card, pass int)
	BlackjackDealt(a *Agent)
	HandsDealt(agents []*Agent)
	TurnStarted(a *Agent)
	AgentDrew(a *Agent, c deck.Card)
	AgentStood(a *Agent)
	AgentBusted(a *Agent)
	AgentSaid(a *Agent, line string)
	CardDiscarded(a *Agent, c deck.Card)
	RoundSettled(out *Outcome)
}

// NopObserver is an Observer that ignores every event, for tests and
// headless simulations.
type NopObserver struct{}

func (NopObserver) RoundStarted(int, []*Agent)          {}
func (NopObserver) BetPlaced(*Agent, int)               {}
func (NopObserver) CardDealt(*Agent, deck.Card, int)    {}
func (NopObserver) BlackjackDealt(*Agent)               {}
func (NopObserver) HandsDealt([]*Agent)                 {}
func (NopObserver) TurnStarted(*Agent)                  {}
func (NopObserver) AgentDrew(*Agent, deck.Card)         {}
func (NopObserver) AgentStood(*Agent)                   {}
func (NopObserver) AgentBusted(*Agent)                  {}
func (NopObserver) AgentSaid(*Agent, string)            {}
func (NopObserver) CardDiscarded(*Agent, deck.Card)     {}
func (NopObserver) RoundSettled(*Outcome)               {}

// RecordsView is the slice of the durable stats store the engine reads
// during play (the analytical NPC sizes bets off its win streak).
type RecordsView interface {
	CurrentStreak(name string) int
}

// zeroRecords is used when no stats store is wired in.
type zeroRecords struct{}

func (zeroRecords) CurrentStreak(string) int { return 0 }
