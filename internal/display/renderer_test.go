package display

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"

	"github.com/jmguzman/blackjack/internal/deck"
	"github.com/jmguzman/blackjack/internal/game"
	"github.com/jmguzman/blackjack/internal/randutil"
	"github.com/jmguzman/blackjack/internal/stats"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestRenderer(input string, upcard bool) (*Renderer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	r := New(Options{
		Out:    out,
		In:     strings.NewReader(input),
		Upcard: upcard,
	}, testLogger())
	return r, out
}

func seatTestAgents(tbl *game.Table) (*game.Agent, *game.Agent) {
	human := game.NewAgent("You", game.Human, game.PersonalityNone, 200)
	npc := game.NewAgent("Carl", game.NPC, game.Conservative, 180)
	tbl.AddAgent(human)
	tbl.AddAgent(npc)
	return human, npc
}

func TestSpeedDelay(t *testing.T) {
	assert.Equal(t, 10*time.Millisecond, SpeedDelay("fast"))
	assert.Equal(t, 120*time.Millisecond, SpeedDelay("normal"))
	assert.Equal(t, 300*time.Millisecond, SpeedDelay("slow"))
	assert.Equal(t, 120*time.Millisecond, SpeedDelay("bogus"))
}

func TestPauseUsesInjectedClock(t *testing.T) {
	mock := quartz.NewMock(t)
	trap := mock.Trap().NewTimer()
	defer trap.Close()

	r := New(Options{
		Out:   &bytes.Buffer{},
		In:    strings.NewReader(""),
		Clock: mock,
		Delay: time.Second,
	}, testLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.pause()
	}()

	ctx := context.Background()
	call := trap.MustWait(ctx)
	call.MustRelease(ctx)

	mock.Advance(time.Second).MustWait(ctx)
	<-done
}

func TestPauseZeroDelayReturnsImmediately(t *testing.T) {
	r, _ := newTestRenderer("", false)
	r.pause() // must not block without a delay configured
}

func TestShowTableConcealsNPCHand(t *testing.T) {
	tbl := game.NewTable(game.DefaultConfig(), randutil.New(1), testLogger())
	human, npc := seatTestAgents(tbl)
	human.Receive(deck.NewCard(deck.Ace, deck.Spades))
	human.Receive(deck.NewCard(deck.Nine, deck.Clubs))
	npc.Receive(deck.NewCard(deck.King, deck.Hearts))
	npc.Receive(deck.NewCard(deck.Seven, deck.Diamonds))

	r, out := newTestRenderer("", false)
	r.Bind(tbl, nil)
	r.ShowTable(tbl.Agents(), false)

	got := out.String()
	assert.Contains(t, got, "A♠ 9♣")
	assert.Contains(t, got, "value: 20")
	assert.Contains(t, got, "[hidden]")
	assert.Contains(t, got, "value: ???")
	// The NPC's concealed first card never appears.
	assert.NotContains(t, got, "K♥")
}

func TestShowTableUpcardMode(t *testing.T) {
	tbl := game.NewTable(game.DefaultConfig(), randutil.New(1), testLogger())
	_, npc := seatTestAgents(tbl)
	npc.Receive(deck.NewCard(deck.King, deck.Hearts))
	npc.Receive(deck.NewCard(deck.Seven, deck.Diamonds))

	r, out := newTestRenderer("", true)
	r.Bind(tbl, nil)
	r.ShowTable(tbl.Agents(), false)

	got := out.String()
	// Upcard mode reveals only the first NPC card.
	assert.Contains(t, got, "K♥")
	assert.NotContains(t, got, "7♦")
	assert.Contains(t, got, "[hidden]")
}

func TestShowTableRevealAll(t *testing.T) {
	tbl := game.NewTable(game.DefaultConfig(), randutil.New(1), testLogger())
	_, npc := seatTestAgents(tbl)
	npc.Receive(deck.NewCard(deck.King, deck.Hearts))
	npc.Receive(deck.NewCard(deck.Seven, deck.Diamonds))

	r, out := newTestRenderer("", false)
	r.Bind(tbl, nil)
	r.ShowTable(tbl.Agents(), true)

	got := out.String()
	assert.Contains(t, got, "K♥ 7♦")
	assert.Contains(t, got, "value: 17")
	assert.NotContains(t, got, "[hidden]")
}

func TestCardDealtConcealment(t *testing.T) {
	human := game.NewAgent("You", game.Human, game.PersonalityNone, 200)
	npc := game.NewAgent("Carl", game.NPC, game.Conservative, 200)

	r, out := newTestRenderer("", true)
	r.CardDealt(human, deck.NewCard(deck.Ace, deck.Spades), 0)
	r.CardDealt(npc, deck.NewCard(deck.King, deck.Hearts), 0)
	r.CardDealt(npc, deck.NewCard(deck.Seven, deck.Diamonds), 1)

	got := out.String()
	assert.Contains(t, got, "Ace of Spades")
	assert.Contains(t, got, "upcard: ")
	assert.Contains(t, got, "K♥")
	assert.Contains(t, got, "[hidden]")
	assert.NotContains(t, got, "7♦")
	assert.NotContains(t, got, "7 of Diamonds")
}

func TestRoundSettledOutput(t *testing.T) {
	tbl := game.NewTable(game.DefaultConfig(), randutil.New(1), testLogger())
	human, npc := seatTestAgents(tbl)
	human.Receive(deck.NewCard(deck.Ace, deck.Spades))
	human.Receive(deck.NewCard(deck.Nine, deck.Clubs))
	human.Status = game.Stood
	human.Wagers = []int{20}
	npc.Receive(deck.NewCard(deck.King, deck.Hearts))
	npc.Receive(deck.NewCard(deck.Five, deck.Diamonds))
	npc.Receive(deck.NewCard(deck.Nine, deck.Spades))
	npc.Status = game.Busted
	npc.Wagers = []int{20}
	tbl.Ledger().Push(-20)
	tbl.Ledger().Push(-20)
	tbl.Ledger().Push(40)

	out := &game.Outcome{
		Round: 3,
		Pot:   40,
		Agents: []game.AgentOutcome{
			{Name: "You", Human: true, Bet: 20, FinalValue: 20, Stood: true, Winner: true, Payout: 40, ChipsAfter: 220},
			{Name: "Carl", Bet: 20, FinalValue: 24, Busted: true, ChipsAfter: 160},
		},
		Winners: []int{0},
	}

	r, buf := newTestRenderer("", false)
	r.Bind(tbl, nil)
	r.RoundSettled(out)

	got := buf.String()
	assert.Contains(t, got, "receives payout: 40 chips")
	assert.Contains(t, got, "Pot total: 40 chips")
	assert.Contains(t, got, "[BUSTED]")
	assert.Contains(t, got, "-20, -20, +40")
	assert.Contains(t, got, "END ROUND 3")
}

func TestRoundSettledEveryoneBusted(t *testing.T) {
	tbl := game.NewTable(game.DefaultConfig(), randutil.New(1), testLogger())
	seatTestAgents(tbl)

	out := &game.Outcome{
		Round: 1,
		Pot:   40,
		Agents: []game.AgentOutcome{
			{Name: "You", Human: true, Bet: 20, FinalValue: 23, Busted: true, ChipsAfter: 180},
			{Name: "Carl", Bet: 20, FinalValue: 25, Busted: true, ChipsAfter: 160},
		},
	}

	r, buf := newTestRenderer("", false)
	r.Bind(tbl, nil)
	r.RoundSettled(out)

	assert.Contains(t, buf.String(), "Everyone busted")
	assert.Contains(t, buf.String(), "Dealer:")
}

func TestShowLeaderboardSortsByChips(t *testing.T) {
	tbl := game.NewTable(game.DefaultConfig(), randutil.New(1), testLogger())
	human, npc := seatTestAgents(tbl)
	human.Chips = 120
	npc.Chips = 260

	r, out := newTestRenderer("", false)
	r.Bind(tbl, nil)
	r.ShowLeaderboard()

	got := out.String()
	assert.Contains(t, got, "1. Carl - chips: 260")
	assert.Contains(t, got, "2. You - chips: 120")
	// The roster itself keeps turn order.
	assert.Equal(t, "You", tbl.Agents()[0].Name)
}

func TestAnnounceUnlocksHumanOnly(t *testing.T) {
	r, out := newTestRenderer("", false)
	r.AnnounceUnlocks([]stats.Unlock{
		{Agent: "You", Human: true, ID: "HIGH_ROLLER", Description: "Win a round with a payout of 40+ chips."},
		{Agent: "Carl", Human: false, ID: "CARD_SHARK", Description: "Win 10 total rounds."},
	})

	got := out.String()
	assert.Contains(t, got, "HIGH_ROLLER")
	assert.NotContains(t, got, "CARD_SHARK")
}

func TestAnnounceBankrupt(t *testing.T) {
	r, out := newTestRenderer("", false)
	r.AnnounceBankrupt([]string{"Chaotic Chad"})
	assert.Contains(t, out.String(), "Chaotic Chad is bankrupt")
}
