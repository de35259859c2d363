// Package config loads the session configuration from an optional HCL file.
// The engine treats these values as fixed for the session.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete session configuration.
type Config struct {
	Game GameSettings `hcl:"game,block"`
}

// GameSettings controls the table and presentation.
type GameSettings struct {
	Decks         int    `hcl:"decks,optional"`          // 1, 2, 4 or 6
	StartingChips int    `hcl:"starting_chips,optional"` // per-agent buy-in
	MinBet        int    `hcl:"min_bet,optional"`        // table minimum
	UpcardMode    bool   `hcl:"upcard_mode,optional"`    // conceal all but NPC first cards
	TextSpeed     string `hcl:"text_speed,optional"`     // fast, normal or slow
	StatsFile     string `hcl:"stats_file,optional"`     // player record store path
	Seed          int64  `hcl:"seed,optional"`           // 0 means seed from entropy
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Decks:         1,
			StartingChips: 200,
			MinBet:        20,
			TextSpeed:     "normal",
			StatsFile:     "player_stats.db",
		},
	}
}

// Load reads an HCL configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse config: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode config: %s", diags.Error())
	}

	def := Default().Game
	if cfg.Game.Decks == 0 {
		cfg.Game.Decks = def.Decks
	}
	if cfg.Game.StartingChips == 0 {
		cfg.Game.StartingChips = def.StartingChips
	}
	if cfg.Game.MinBet == 0 {
		cfg.Game.MinBet = def.MinBet
	}
	if cfg.Game.TextSpeed == "" {
		cfg.Game.TextSpeed = def.TextSpeed
	}
	if cfg.Game.StatsFile == "" {
		cfg.Game.StatsFile = def.StatsFile
	}
	return &cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Game.Decks {
	case 1, 2, 4, 6:
	default:
		return fmt.Errorf("decks must be 1, 2, 4 or 6, got %d", c.Game.Decks)
	}
	if c.Game.StartingChips < 1 {
		return fmt.Errorf("starting_chips must be positive, got %d", c.Game.StartingChips)
	}
	if c.Game.MinBet < 1 {
		return fmt.Errorf("min_bet must be at least 1, got %d", c.Game.MinBet)
	}
	if c.Game.MinBet > c.Game.StartingChips {
		return fmt.Errorf("min_bet %d exceeds starting_chips %d", c.Game.MinBet, c.Game.StartingChips)
	}
	switch c.Game.TextSpeed {
	case "fast", "normal", "slow":
	default:
		return fmt.Errorf("text_speed must be fast, normal or slow, got %q", c.Game.TextSpeed)
	}
	return nil
}
