package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
game {
  decks          = 2
  starting_chips = 500
  min_bet        = 50
  upcard_mode    = true
  text_speed     = "fast"
  stats_file     = "custom.db"
  seed           = 42
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2, cfg.Game.Decks)
	assert.Equal(t, 500, cfg.Game.StartingChips)
	assert.Equal(t, 50, cfg.Game.MinBet)
	assert.True(t, cfg.Game.UpcardMode)
	assert.Equal(t, "fast", cfg.Game.TextSpeed)
	assert.Equal(t, "custom.db", cfg.Game.StatsFile)
	assert.Equal(t, int64(42), cfg.Game.Seed)
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  decks = 4
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Game.Decks)
	assert.Equal(t, 200, cfg.Game.StartingChips)
	assert.Equal(t, 20, cfg.Game.MinBet)
	assert.Equal(t, "normal", cfg.Game.TextSpeed)
	assert.Equal(t, "player_stats.db", cfg.Game.StatsFile)
	assert.Zero(t, cfg.Game.Seed)
}

func TestLoadBadSyntax(t *testing.T) {
	path := writeConfig(t, `game { decks = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"six decks", func(c *Config) { c.Game.Decks = 6 }, true},
		{"three decks", func(c *Config) { c.Game.Decks = 3 }, false},
		{"zero decks", func(c *Config) { c.Game.Decks = 0 }, false},
		{"no chips", func(c *Config) { c.Game.StartingChips = 0 }, false},
		{"zero min bet", func(c *Config) { c.Game.MinBet = 0 }, false},
		{"min bet over buy-in", func(c *Config) { c.Game.MinBet = 500 }, false},
		{"slow speed", func(c *Config) { c.Game.TextSpeed = "slow" }, true},
		{"bogus speed", func(c *Config) { c.Game.TextSpeed = "warp" }, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
