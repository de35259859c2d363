package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmguzman/blackjack/internal/randutil"
)

// scriptedController plays back a fixed bet and a fixed action sequence,
// falling back to standing once the script runs out.
type scriptedController struct {
	bet     int
	actions []PlayerAction
}

func (c *scriptedController) PlaceBet(_ *Agent, _, _ int) (int, bool) {
	if c.bet <= 0 {
		return 0, false
	}
	return c.bet, true
}

func (c *scriptedController) ChooseAction(_ *Agent) PlayerAction {
	if len(c.actions) == 0 {
		return ActionStand
	}
	act := c.actions[0]
	c.actions = c.actions[1:]
	return act
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestTable(t *testing.T, seed int64, ctrl Controller) *Table {
	t.Helper()
	tbl := NewTable(DefaultConfig(), randutil.New(seed), testLogger())
	tbl.SetController(ctrl)
	tbl.AddAgent(NewAgent("You", Human, PersonalityNone, 200))
	tbl.AddAgent(NewAgent("Carl", NPC, Conservative, 200))
	tbl.AddAgent(NewAgent("Randy", NPC, Aggressive, 200))
	return tbl
}

func cardsInPlay(tbl *Table) int {
	total := tbl.Shoe().Remaining() + tbl.Shoe().DiscardCount()
	for _, a := range tbl.Agents() {
		total += len(a.Hand)
	}
	return total
}

func TestPlayRoundStandImmediately(t *testing.T) {
	ctrl := &scriptedController{bet: 20}
	tbl := newTestTable(t, 7, ctrl)

	out, err := tbl.PlayRound()
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1, out.Round)
	assert.Len(t, out.Agents, 3)
	// Human stakes 20; the smallest NPC token bet is half the minimum.
	assert.GreaterOrEqual(t, out.Pot, 40)

	for i, a := range tbl.Agents() {
		ao := out.Agents[i]
		assert.Equal(t, a.Name, ao.Name)
		assert.NotEqual(t, InPlay, a.Status, "agent %s must end terminal", a.Name)
		assert.GreaterOrEqual(t, len(a.Hand), 2)
		assert.Equal(t, a.Chips, ao.ChipsAfter)
		assert.Equal(t, a.Bet, ao.Bet)
	}

	// The human stood on the opening hand.
	human := tbl.Agents()[0]
	assert.Equal(t, 20, human.Bet)
	assert.Len(t, human.Hand, 2)

	// Every winner got a positive payout and beats or ties every loser.
	for _, i := range out.Winners {
		w := out.Agents[i]
		assert.False(t, w.Busted)
		assert.Positive(t, w.Payout)
		for _, other := range out.Agents {
			if !other.Busted && other.Bet > 0 {
				assert.GreaterOrEqual(t, w.FinalValue, other.FinalValue)
			}
		}
	}
}

func TestPlayRoundConservesCards(t *testing.T) {
	ctrl := &scriptedController{bet: 20}
	tbl := newTestTable(t, 11, ctrl)
	want := 52 * tbl.Config().Decks

	for round := 0; round < 30; round++ {
		ctrl.actions = nil
		_, err := tbl.PlayRound()
		require.NoError(t, err)
		require.Equal(t, want, cardsInPlay(tbl), "round %d leaked cards", round+1)
	}
}

func TestPlayRoundHumanHitsUntilBustOrTwentyOne(t *testing.T) {
	// An endless hit script terminates: the human either busts or the
	// engine keeps dealing past 21 (which is a bust).
	ctrl := &scriptedController{bet: 20}
	for i := 0; i < 20; i++ {
		ctrl.actions = append(ctrl.actions, ActionHit)
	}
	tbl := newTestTable(t, 3, ctrl)

	out, err := tbl.PlayRound()
	require.NoError(t, err)

	human := tbl.Agents()[0]
	if human.Hand.IsBlackjack() {
		// A natural stands before the script can run.
		assert.Equal(t, Stood, human.Status)
		return
	}
	assert.Equal(t, Busted, human.Status)
	assert.True(t, out.Agents[0].Busted)
	assert.False(t, out.HumanWon())
}

func TestPlayRoundQuit(t *testing.T) {
	ctrl := &scriptedController{bet: 20, actions: []PlayerAction{ActionQuit}}
	tbl := newTestTable(t, 5, ctrl)

	out, err := tbl.PlayRound()
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrQuit)
}

func TestPlayRoundDiscard(t *testing.T) {
	ctrl := &scriptedController{bet: 20, actions: []PlayerAction{
		ActionHit,
		ActionDiscard,
		ActionStand,
	}}
	tbl := newTestTable(t, 13, ctrl)

	before := 52 * tbl.Config().Decks
	_, err := tbl.PlayRound()
	require.NoError(t, err)

	human := tbl.Agents()[0]
	switch {
	case human.Hand.IsBlackjack():
		// A natural consumed no script actions.
	case human.Status == Busted:
		// The hit busted before the discard could run.
	default:
		// Hit then discard leaves the opening two cards.
		assert.Len(t, human.Hand, 2)
		assert.GreaterOrEqual(t, tbl.Shoe().DiscardCount(), 1)
	}
	assert.Equal(t, before, cardsInPlay(tbl))
}

func TestPlayRoundSkipsBrokeAgent(t *testing.T) {
	ctrl := &scriptedController{bet: 20}
	tbl := NewTable(DefaultConfig(), randutil.New(9), testLogger())
	tbl.SetController(ctrl)
	tbl.AddAgent(NewAgent("You", Human, PersonalityNone, 200))
	broke := NewAgent("Broke", NPC, Aggressive, 0)
	tbl.AddAgent(broke)
	tbl.AddAgent(NewAgent("Carl", NPC, Conservative, 200))

	out, err := tbl.PlayRound()
	require.NoError(t, err)

	assert.Zero(t, broke.Bet)
	assert.Empty(t, broke.Hand)
	assert.Equal(t, 0, out.Agents[1].Bet)
	for _, i := range out.Winners {
		assert.NotEqual(t, "Broke", out.Agents[i].Name)
	}
}

func TestBetsLeaveChipsImmediately(t *testing.T) {
	ctrl := &scriptedController{bet: 50}
	tbl := newTestTable(t, 21, ctrl)

	out, err := tbl.PlayRound()
	require.NoError(t, err)

	human := tbl.Agents()[0]
	assert.Equal(t, 50, human.Bet)
	assert.Equal(t, 50, human.LastBet)
	assert.Equal(t, []int{50}, human.Wagers)
	if out.HumanWon() {
		assert.Equal(t, 200-50+out.Agents[0].Payout, human.Chips)
	} else {
		assert.Equal(t, 150, human.Chips)
	}
}

func TestHumanBetFallsBackToDefault(t *testing.T) {
	// bet <= 0 makes the scripted controller return ok=false.
	ctrl := &scriptedController{bet: 0}
	tbl := newTestTable(t, 17, ctrl)

	_, err := tbl.PlayRound()
	require.NoError(t, err)

	// With no last bet the default is the table minimum.
	human := tbl.Agents()[0]
	assert.Equal(t, tbl.Config().MinBet, human.LastBet)
}

func TestRemoveBankrupt(t *testing.T) {
	tbl := NewTable(DefaultConfig(), randutil.New(1), testLogger())
	tbl.AddAgent(NewAgent("You", Human, PersonalityNone, 100))
	gone := NewAgent("Gone", NPC, Erratic, 100)
	tbl.AddAgent(gone)
	tbl.AddAgent(NewAgent("Carl", NPC, Conservative, 100))

	gone.Chips = 0
	removed := tbl.RemoveBankrupt()
	assert.Equal(t, []string{"Gone"}, removed)
	assert.Len(t, tbl.Agents(), 2)
	assert.True(t, tbl.CanContinue())

	tbl.Agents()[1].Chips = 0
	tbl.RemoveBankrupt()
	assert.False(t, tbl.CanContinue())
}

func TestSessionTallyTracksResults(t *testing.T) {
	ctrl := &scriptedController{bet: 20}
	tbl := newTestTable(t, 29, ctrl)

	rounds := 10
	for i := 0; i < rounds; i++ {
		ctrl.actions = nil
		_, err := tbl.PlayRound()
		require.NoError(t, err)
	}

	tally := tbl.TallyFor("You")
	require.NotNil(t, tally)
	assert.Equal(t, rounds, tally.Wins+tally.Losses)
}

func TestSeededSessionsReplayIdentically(t *testing.T) {
	run := func() []int {
		ctrl := &scriptedController{bet: 20}
		tbl := newTestTable(t, 99, ctrl)
		var chips []int
		for i := 0; i < 5; i++ {
			ctrl.actions = nil
			_, err := tbl.PlayRound()
			require.NoError(t, err)
			for _, a := range tbl.Agents() {
				chips = append(chips, a.Chips)
			}
		}
		return chips
	}

	assert.Equal(t, run(), run())
}
