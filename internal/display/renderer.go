// Package display renders the table to a terminal and gathers the human
// agent's input. The engine exposes every agent's full state; concealment
// (upcard mode) happens entirely here.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/jmguzman/blackjack/internal/deck"
	"github.com/jmguzman/blackjack/internal/game"
	"github.com/jmguzman/blackjack/internal/stats"
)

// SpeedDelay maps a text_speed setting to the pacing delay between reveals.
func SpeedDelay(speed string) time.Duration {
	switch speed {
	case "fast":
		return 10 * time.Millisecond
	case "slow":
		return 300 * time.Millisecond
	default:
		return 120 * time.Millisecond
	}
}

// Renderer implements game.Observer and game.Controller over a terminal.
type Renderer struct {
	out    io.Writer
	in     *bufio.Reader
	eof    bool
	clock  quartz.Clock
	delay  time.Duration
	upcard bool
	dealer *dealer
	logger *log.Logger

	table *game.Table
	store *stats.Store
}

// Options configures a Renderer.
type Options struct {
	Out    io.Writer
	In     io.Reader
	Clock  quartz.Clock // nil means the real clock
	Delay  time.Duration
	Upcard bool
}

// New creates a renderer. Bind must be called before play begins.
func New(opts Options, logger *log.Logger) *Renderer {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Renderer{
		out:    opts.Out,
		in:     bufio.NewReader(opts.In),
		clock:  clock,
		delay:  opts.Delay,
		upcard: opts.Upcard,
		dealer: newDealer(),
		logger: logger.WithPrefix("display"),
	}
}

// Bind attaches the table and record store the renderer reads from.
func (r *Renderer) Bind(table *game.Table, store *stats.Store) {
	r.table = table
	r.store = store
}

// pause sleeps for the pacing delay on the injected clock, so tests with a
// mock clock never block.
func (r *Renderer) pause() {
	if r.delay <= 0 {
		return
	}
	t := r.clock.NewTimer(r.delay)
	defer t.Stop()
	<-t.C
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Renderer) println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// cardStr renders a card colored by suit.
func cardStr(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func nameStyleFor(a *game.Agent) string {
	if a.IsHuman() {
		return HumanStyle.Render(a.Name)
	}
	return NPCStyle.Render(a.Name)
}

func (r *Renderer) dealerSays(line string) {
	r.printf("%s %s\n", DealerStyle.Render("Dealer:"), line)
}

// RoundStarted prints the round header and the dealer's opener.
func (r *Renderer) RoundStarted(round int, agents []*game.Agent) {
	r.println()
	r.println(HeaderStyle.Render(fmt.Sprintf("================== ROUND %d ==================", round)))
	for _, a := range agents {
		if a.IsHuman() {
			r.dealerSays(r.dealer.nextGoodLuck())
			break
		}
	}
}

// BetPlaced echoes a stake.
func (r *Renderer) BetPlaced(a *game.Agent, amount int) {
	r.printf("%16s bets %d chips.\n", a.Name, amount)
	r.pause()
}

// CardDealt shows an initial-deal card. In upcard mode only an NPC's first
// card is revealed.
func (r *Renderer) CardDealt(a *game.Agent, c deck.Card, pass int) {
	switch {
	case a.IsHuman():
		r.printf("%s %s\n", HumanStyle.Render("Dealt to You:"), c.Longform())
	case r.upcard && pass == 0:
		r.printf("%s receives upcard: %s\n", nameStyleFor(a), cardStr(c))
	case r.upcard:
		r.printf("%s receives: [hidden]\n", nameStyleFor(a))
	default:
		r.printf("%s receives: %s\n", nameStyleFor(a), c.Longform())
	}
	r.pause()
}

// BlackjackDealt announces a natural 21.
func (r *Renderer) BlackjackDealt(a *game.Agent) {
	r.printf("%s %s\n", nameStyleFor(a), SuccessStyle.Render("has a natural blackjack!"))
}

// HandsDealt shows the table and scoreboard once the deal is complete.
func (r *Renderer) HandsDealt(agents []*game.Agent) {
	r.ShowTable(agents, false)
	r.ShowScoreboard(agents)
}

// TurnStarted marks the start of an agent's action sequence.
func (r *Renderer) TurnStarted(a *game.Agent) {
	if !a.IsHuman() {
		r.printf("\n%s is thinking...\n", nameStyleFor(a))
		r.pause()
	}
}

// AgentDrew shows a hit.
func (r *Renderer) AgentDrew(a *game.Agent, c deck.Card) {
	if a.IsHuman() {
		r.printf("%s %s\n", HumanStyle.Render("You drew:"), c.Longform())
	} else {
		r.printf("%s draws: %s -> value=%d\n", nameStyleFor(a), c.Longform(), a.HandValue())
	}
	r.pause()
}

// AgentStood shows a stand.
func (r *Renderer) AgentStood(a *game.Agent) {
	if a.IsHuman() {
		r.printf("You chose to stand at %d.\n", a.HandValue())
	} else {
		r.printf("%s stands at %d\n", nameStyleFor(a), a.HandValue())
	}
	r.pause()
}

// AgentBusted shows a bust.
func (r *Renderer) AgentBusted(a *game.Agent) {
	if a.IsHuman() {
		r.println(ErrorStyle.Render(fmt.Sprintf("You busted with %d!", a.HandValue())))
	} else {
		r.printf("%s %s\n", nameStyleFor(a), ErrorStyle.Render(fmt.Sprintf("busts with %d!", a.HandValue())))
	}
	r.pause()
}

// AgentSaid prints a table-talk line.
func (r *Renderer) AgentSaid(a *game.Agent, line string) {
	r.printf("%s %s\n", NPCStyle.Render(a.Name+":"), line)
}

// CardDiscarded confirms a voluntary discard.
func (r *Renderer) CardDiscarded(a *game.Agent, c deck.Card) {
	r.printf("Discarded %s to discard pile.\n", c.Longform())
}

// RoundSettled prints payouts, the round results and the closing scoreboard.
func (r *Renderer) RoundSettled(out *game.Outcome) {
	r.println()
	if out.EveryoneBusted() {
		r.println(WarningStyle.Render("Everyone busted. House keeps the pot."))
		r.dealerSays(r.dealer.nextSnark())
	} else {
		for _, i := range out.Winners {
			ao := out.Agents[i]
			r.printf("%s receives payout: %d chips.\n", SuccessStyle.Render(ao.Name), ao.Payout)
			r.pause()
		}
		if !out.HumanWon() {
			r.dealerSays(r.dealer.nextSnark())
		}
	}

	r.printf("\nPot total: %d chips.\n", out.Pot)
	r.showRecentTransactions(12)

	r.println("\n--- Round Results ---")
	agents := r.table.Agents()
	for i, ao := range out.Agents {
		r.printf("%s: hand(%s) value=%d", ao.Name, agents[i].Hand, ao.FinalValue)
		if ao.Busted {
			r.printf(" %s", ErrorStyle.Render("[BUSTED]"))
		}
		r.printf(" | chips=%d", ao.ChipsAfter)
		if len(agents[i].Wagers) > 0 {
			r.printf(" | wagers:%s", joinInts(agents[i].Wagers, ","))
		}
		r.println()
	}
	r.println("---------------------")

	r.ShowScoreboard(agents)
	r.println(HeaderStyle.Render(fmt.Sprintf("============== END ROUND %d ==============", out.Round)))
}

// showRecentTransactions prints the tail of the chip ledger.
func (r *Renderer) showRecentTransactions(n int) {
	entries := r.table.Ledger().Recent(n)
	parts := make([]string, len(entries))
	for i, v := range entries {
		if v >= 0 {
			parts[i] = fmt.Sprintf("+%d", v)
		} else {
			parts[i] = strconv.Itoa(v)
		}
	}
	r.printf("Recent transactions (oldest->newest): %s\n", strings.Join(parts, ", "))
}

// ShowTable prints each agent's hand. Non-human hands are concealed unless
// revealAll: upcard mode shows only the first card, otherwise the first
// card is the hidden one.
func (r *Renderer) ShowTable(agents []*game.Agent, revealAll bool) {
	r.println("\n------- TABLE -------")
	for _, a := range agents {
		r.printf("%s | chips: %s | hand: ", nameStyleFor(a), chipsStyle(a.Chips).Render(strconv.Itoa(a.Chips)))
		switch {
		case a.IsHuman() || revealAll:
			r.printf("%s (value: %d)", a.Hand, a.HandValue())
		case len(a.Hand) == 0:
			r.printf("(no cards)")
		case r.upcard:
			r.printf("%s", cardStr(a.Hand[0]))
			if len(a.Hand) > 1 {
				r.printf(", [hidden]")
			}
			r.printf(" (value: ???)")
		default:
			r.printf("[hidden]")
			for _, c := range a.Hand[1:] {
				r.printf(", %s", cardStr(c))
			}
			r.printf(" (value: ???)")
		}
		r.println()
	}
	r.println("---------------------")
}

// ShowScoreboard prints the colored status table.
func (r *Renderer) ShowScoreboard(agents []*game.Agent) {
	rule := HeaderStyle.Render(strings.Repeat("-", 63))
	r.println(rule)
	r.printf("%-20s%-8s%-10s%s\n", "PLAYER", "CHIPS", "RESULT", "HAND")
	r.println(rule)
	for _, a := range agents {
		status := a.Status.String()
		statusStyled := InfoStyle.Render(status)
		switch {
		case a.Status == game.Busted:
			statusStyled = ErrorStyle.Render(status)
		case a.HandValue() == 21 && len(a.Hand) > 0:
			statusStyled = SuccessStyle.Render("21")
		}
		hand := "(no cards)"
		if len(a.Hand) > 0 {
			hand = fmt.Sprintf("%d (%s)", a.HandValue(), a.Hand)
		}
		r.printf("%-20s%-8s%-10s%s\n",
			nameStyleFor(a),
			chipsStyle(a.Chips).Render(strconv.Itoa(a.Chips)),
			statusStyled,
			hand)
	}
	r.println(rule)
}

// ShowSessionStats prints the session-scoped counters for every agent.
func (r *Renderer) ShowSessionStats() {
	r.println("\n" + HeaderStyle.Render("===== SESSION STATS ====="))
	for _, a := range r.table.Agents() {
		tally := r.table.TallyFor(a.Name)
		if tally == nil {
			continue
		}
		r.printf("%s -> wins: %d, losses: %d, ties: %d, blackjacks: %d, chips: %d\n",
			a.Name, tally.Wins, tally.Losses, tally.Ties, tally.Blackjacks, a.Chips)
	}
	r.println("=========================")
}

// ShowLeaderboard prints the final chip standings, highest first.
func (r *Renderer) ShowLeaderboard() {
	agents := append([]*game.Agent(nil), r.table.Agents()...)
	for i := 1; i < len(agents); i++ {
		for j := i; j > 0 && agents[j].Chips > agents[j-1].Chips; j-- {
			agents[j], agents[j-1] = agents[j-1], agents[j]
		}
	}
	r.println("\nFinal stats and leaderboard:")
	for i, a := range agents {
		r.printf("%d. %s - chips: %d\n", i+1, a.Name, a.Chips)
	}
	r.println("Thank you for playing!")
}

// AnnounceUnlocks prints newly earned achievements for the human seat.
func (r *Renderer) AnnounceUnlocks(unlocks []stats.Unlock) {
	for _, u := range unlocks {
		if !u.Human {
			continue
		}
		r.println(SuccessStyle.Render(fmt.Sprintf("\n>>> Achievement Unlocked: %s!", u.ID)))
		r.printf("    %s\n", u.Description)
	}
}

// AnnounceBankrupt reports agents removed from the roster.
func (r *Renderer) AnnounceBankrupt(names []string) {
	for _, name := range names {
		r.printf("%s is bankrupt and removed from game.\n", name)
	}
}

func joinInts(vals []int, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
