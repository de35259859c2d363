package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jmguzman/blackjack/internal/config"
	"github.com/jmguzman/blackjack/internal/stats"
)

// ProfilesCmd operates directly on the player record store, outside of play.
type ProfilesCmd struct {
	Config    string `short:"c" help:"HCL config file" default:"blackjack.hcl"`
	StatsFile string `help:"Player record store path"`

	List         ProfilesListCmd         `cmd:"" help:"List every stored profile"`
	Show         ProfilesShowCmd         `cmd:"" help:"Show one profile"`
	Achievements ProfilesAchievementsCmd `cmd:"" help:"Show achievements for one profile"`
	Reset        ProfilesResetCmd        `cmd:"" help:"Reset one profile"`
	ResetAll     ProfilesResetAllCmd     `cmd:"reset-all" help:"Reset every profile"`
}

// openStore loads the record store using the same config resolution as play.
func (p *ProfilesCmd) openStore() (*stats.Store, error) {
	cfg, err := config.Load(p.Config)
	if err != nil {
		return nil, err
	}
	if v := os.Getenv("BLACKJACK_STATS_FILE"); v != "" {
		cfg.Game.StatsFile = v
	}
	if p.StatsFile != "" {
		cfg.Game.StatsFile = p.StatsFile
	}
	store := stats.NewStore(cfg.Game.StatsFile, log.New(io.Discard))
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func printRecord(name string, rec *stats.Record) {
	fmt.Printf("%s : wins=%d losses=%d ties=%d total_games=%d best_streak=%d current_streak=%d biggest_win=%d blackjacks=%d achievements=[%s]\n",
		name, rec.Wins, rec.Losses, rec.Ties, rec.TotalGames, rec.BestStreak,
		rec.CurrentStreak, rec.BiggestWin, rec.Blackjacks,
		strings.Join(rec.AchievementIDs(), ", "))
}

type ProfilesListCmd struct{}

func (c *ProfilesListCmd) Run(parent *ProfilesCmd) error {
	store, err := parent.openStore()
	if err != nil {
		return err
	}
	names := store.Names()
	if len(names) == 0 {
		fmt.Println("No profiles stored.")
		return nil
	}
	for _, name := range names {
		if rec, ok := store.Lookup(name); ok {
			printRecord(name, rec)
		}
	}
	return nil
}

type ProfilesShowCmd struct {
	Name string `arg:"" help:"Profile name"`
}

func (c *ProfilesShowCmd) Run(parent *ProfilesCmd) error {
	store, err := parent.openStore()
	if err != nil {
		return err
	}
	rec, ok := store.Lookup(c.Name)
	if !ok {
		return fmt.Errorf("no profile named %q", c.Name)
	}
	printRecord(c.Name, rec)
	return nil
}

type ProfilesAchievementsCmd struct {
	Name string `arg:"" optional:"" default:"You" help:"Profile name"`
}

func (c *ProfilesAchievementsCmd) Run(parent *ProfilesCmd) error {
	store, err := parent.openStore()
	if err != nil {
		return err
	}
	rec, ok := store.Lookup(c.Name)
	if !ok {
		return fmt.Errorf("no profile named %q", c.Name)
	}
	fmt.Printf("Achievements for %s:\n", c.Name)
	unlocked := rec.AchievementIDs()
	if len(unlocked) == 0 {
		fmt.Println("  (none unlocked)")
	}
	for _, id := range unlocked {
		fmt.Printf("  ✔ %s - %s\n", id, stats.Catalog[id])
	}
	for _, id := range stats.CatalogIDs() {
		if !rec.Unlocked(id) {
			fmt.Printf("  ✘ %s - %s\n", id, stats.Catalog[id])
		}
	}
	return nil
}

type ProfilesResetCmd struct {
	Name string `arg:"" help:"Profile name"`
}

func (c *ProfilesResetCmd) Run(parent *ProfilesCmd) error {
	store, err := parent.openStore()
	if err != nil {
		return err
	}
	if !store.Reset(c.Name) {
		return fmt.Errorf("no profile named %q", c.Name)
	}
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Printf("Profile reset for %s.\n", c.Name)
	return nil
}

type ProfilesResetAllCmd struct{}

func (c *ProfilesResetAllCmd) Run(parent *ProfilesCmd) error {
	store, err := parent.openStore()
	if err != nil {
		return err
	}
	store.ResetAll()
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Println("All profiles reset.")
	return nil
}
