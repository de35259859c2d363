package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/jmguzman/blackjack/internal/config"
	"github.com/jmguzman/blackjack/internal/display"
	"github.com/jmguzman/blackjack/internal/game"
	"github.com/jmguzman/blackjack/internal/randutil"
	"github.com/jmguzman/blackjack/internal/stats"
)

// PlayCmd runs an interactive session. Flags override the HCL config file.
type PlayCmd struct {
	Config    string `short:"c" help:"HCL config file" default:"blackjack.hcl"`
	Decks     int    `help:"Shoe size in 52-card decks (1, 2, 4 or 6)"`
	Seed      int64  `help:"Random seed for reproducible sessions"`
	Upcard    bool   `help:"Conceal all but the first card of NPC hands"`
	Speed     string `help:"Text speed: fast, normal or slow"`
	StatsFile string `help:"Player record store path"`
	LogFile   string `help:"Debug log path" default:"blackjack.log"`
	Debug     bool   `short:"d" help:"Verbose debug logging"`
}

func (p *PlayCmd) Run() error {
	cfg, err := config.Load(p.Config)
	if err != nil {
		return err
	}
	p.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := os.OpenFile(p.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("create debug log: %w", err)
	}
	defer logFile.Close()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
	})
	if p.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	fmt.Print(display.TitleStyle.Render(" ♠ ♥ Blackjack Table ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	rng := randutil.NewEntropy()
	if cfg.Game.Seed != 0 {
		rng = randutil.New(cfg.Game.Seed)
	}
	logger.Info("starting session",
		"decks", cfg.Game.Decks,
		"chips", cfg.Game.StartingChips,
		"minBet", cfg.Game.MinBet,
		"upcard", cfg.Game.UpcardMode)

	store := stats.NewStore(cfg.Game.StatsFile, logger)
	if err := store.Load(); err != nil {
		return err
	}
	tracker := stats.NewTracker(store, logger)

	table := game.NewTable(game.Config{
		Decks:            cfg.Game.Decks,
		StartingChips:    cfg.Game.StartingChips,
		MinBet:           cfg.Game.MinBet,
		LowCardThreshold: 15,
		UpcardMode:       cfg.Game.UpcardMode,
	}, rng, logger)
	seatRoster(table, cfg.Game.StartingChips)

	renderer := display.New(display.Options{
		Out:    os.Stdout,
		In:     os.Stdin,
		Delay:  display.SpeedDelay(cfg.Game.TextSpeed),
		Upcard: cfg.Game.UpcardMode,
	}, logger)
	renderer.Bind(table, store)
	table.SetObserver(renderer)
	table.SetController(renderer)
	table.SetRecords(tracker)

	return runSession(table, tracker, renderer, store, logger)
}

// applyOverrides layers env vars and then flags on top of the file config.
func (p *PlayCmd) applyOverrides(cfg *config.Config) {
	if v := os.Getenv("BLACKJACK_STATS_FILE"); v != "" {
		cfg.Game.StatsFile = v
	}
	if v := os.Getenv("BLACKJACK_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.Seed = seed
		}
	}
	if p.Decks != 0 {
		cfg.Game.Decks = p.Decks
	}
	if p.Seed != 0 {
		cfg.Game.Seed = p.Seed
	}
	if p.Upcard {
		cfg.Game.UpcardMode = true
	}
	if p.Speed != "" {
		cfg.Game.TextSpeed = p.Speed
	}
	if p.StatsFile != "" {
		cfg.Game.StatsFile = p.StatsFile
	}
}

// seatRoster seats the human and the four house NPCs.
func seatRoster(table *game.Table, chips int) {
	table.AddAgent(game.NewAgent("You", game.Human, game.PersonalityNone, chips))

	carl := game.NewAgent("Cautious Carl", game.NPC, game.Conservative, chips)
	carl.SetSpeech("Mmm… 14 is too risky. I'll stand.", "I'll play it safe.")
	table.AddAgent(carl)

	randy := game.NewAgent("Reckless Randy", game.NPC, game.Aggressive, chips)
	randy.SetSpeech("Hit me again! Let's go!", "All in baby!")
	table.AddAgent(randy)

	samantha := game.NewAgent("Smart Samantha", game.NPC, game.Analytical, chips)
	samantha.SetSpeech("Statistics say I should hit here.", "I'll play the odds.")
	table.AddAgent(samantha)

	chad := game.NewAgent("Chaotic Chad", game.NPC, game.Erratic, chips)
	chad.SetSpeech("Stand! No, hit! No wait, hit!", "Feeling unpredictable today.")
	table.AddAgent(chad)
}

// runSession plays rounds until the player quits or the roster thins out.
func runSession(table *game.Table, tracker *stats.Tracker, renderer *display.Renderer, store *stats.Store, logger *log.Logger) error {
	for {
		out, err := table.PlayRound()
		if err != nil {
			if errors.Is(err, game.ErrQuit) {
				// Flush the pending write before exiting mid-round.
				if serr := store.Save(); serr != nil {
					logger.Warn("cannot save player stats", "error", serr)
				}
				return nil
			}
			return err
		}

		unlocks := tracker.ApplyRound(out)
		renderer.AnnounceUnlocks(unlocks)
		renderer.ShowSessionStats()
		logger.Info("round complete", "round", out.Round, "pot", out.Pot, "winners", len(out.Winners))

		choice := renderer.PromptContinue()
		if choice == display.ContinueProfiles {
			renderer.ProfilesMenu()
			choice = display.ContinuePlay
		}

		renderer.AnnounceBankrupt(table.RemoveBankrupt())
		if !table.CanContinue() {
			fmt.Println("Not enough players to continue. Ending game.")
			break
		}
		if choice == display.ContinueQuit {
			break
		}
	}

	renderer.ShowLeaderboard()
	if err := store.Save(); err != nil {
		logger.Warn("cannot save player stats", "error", err)
	}
	return nil
}
