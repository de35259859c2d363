package game

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/jmguzman/blackjack/internal/deck"
)

// Config fixes the table parameters for the session.
type Config struct {
	Decks            int  // 52-card decks in the shoe (1, 2, 4 or 6)
	StartingChips    int  // chip balance each agent begins with
	MinBet           int  // table minimum stake
	LowCardThreshold int  // rebuild the shoe before dealing below this
	UpcardMode       bool // presentation hint: conceal all but NPC first cards
}

// DefaultConfig returns the table parameters the original cabinet shipped
// with.
func DefaultConfig() Config {
	return Config{
		Decks:            1,
		StartingChips:    200,
		MinBet:           20,
		LowCardThreshold: 15,
	}
}

// Tally holds session-scoped counters per agent, separate from the durable
// record store. Reset only by process exit.
type Tally struct {
	Wins       int
	Losses     int
	Ties       int
	Blackjacks int
}

// Table owns the entire round state machine: the roster, the shoe, the pot
// and the chip ledger. Everything runs on the caller's goroutine; the only
// blocking points are the human Controller calls.
type Table struct {
	cfg     Config
	shoe    *deck.Shoe
	rng     *rand.Rand
	ledger  *Ledger
	logger  *log.Logger
	obs     Observer
	ctrl    Controller
	records RecordsView

	agents []*Agent
	pot    []potEntry
	round  int
	tally  map[string]*Tally
}

type potEntry struct {
	name   string
	amount int
}

// NewTable creates an empty table. The rng is owned by the table and shared
// with the shoe so a fixed seed replays an identical session.
func NewTable(cfg Config, rng *rand.Rand, logger *log.Logger) *Table {
	if cfg.Decks < 1 {
		cfg.Decks = 1
	}
	if cfg.LowCardThreshold <= 0 {
		cfg.LowCardThreshold = 15
	}
	shoe := deck.NewShoe(cfg.Decks, rng)
	shoe.Shuffle()
	return &Table{
		cfg:     cfg,
		shoe:    shoe,
		rng:     rng,
		ledger:  &Ledger{},
		logger:  logger.WithPrefix("table"),
		obs:     NopObserver{},
		records: zeroRecords{},
		tally:   make(map[string]*Tally),
	}
}

// SetObserver wires the presentation collaborator.
func (t *Table) SetObserver(obs Observer) {
	if obs != nil {
		t.obs = obs
	}
}

// SetController wires the human input collaborator.
func (t *Table) SetController(ctrl Controller) {
	t.ctrl = ctrl
}

// SetRecords wires the durable stats view used by NPC betting.
func (t *Table) SetRecords(r RecordsView) {
	if r != nil {
		t.records = r
	}
}

// AddAgent seats an agent.
func (t *Table) AddAgent(a *Agent) {
	t.agents = append(t.agents, a)
	t.tally[a.Name] = &Tally{}
}

// Agents returns the seated roster in turn order.
func (t *Table) Agents() []*Agent {
	return t.agents
}

// Config returns the session configuration.
func (t *Table) Config() Config {
	return t.cfg
}

// Ledger returns the chip transaction ledger.
func (t *Table) Ledger() *Ledger {
	return t.ledger
}

// Shoe returns the table's shoe.
func (t *Table) Shoe() *deck.Shoe {
	return t.shoe
}

// Round returns the number of the round most recently started.
func (t *Table) Round() int {
	return t.round
}

// TallyFor returns the session counters for an agent, nil if unknown.
func (t *Table) TallyFor(name string) *Tally {
	return t.tally[name]
}

// PotTotal returns the sum of all stakes this round.
func (t *Table) PotTotal() int {
	total := 0
	for _, e := range t.pot {
		total += e.amount
	}
	return total
}

// RemoveBankrupt culls agents whose chips have reached zero and returns
// their names. Called between rounds, never mid-round.
func (t *Table) RemoveBankrupt() []string {
	var removed []string
	kept := t.agents[:0]
	for _, a := range t.agents {
		if a.Chips <= 0 {
			removed = append(removed, a.Name)
			continue
		}
		kept = append(kept, a)
	}
	t.agents = kept
	return removed
}

// CanContinue reports whether enough agents remain for another round.
func (t *Table) CanContinue() bool {
	return len(t.agents) >= 2
}
