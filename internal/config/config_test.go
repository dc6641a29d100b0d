package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"slip rate above one", func(c *Config) { c.Mastery.SlipRate = 1.5 }},
		{"target at one", func(c *Config) { c.ZPD.TargetSuccessRate = 1 }},
		{"zero queue capacity", func(c *Config) { c.Feed.QueueCapacity = 0 }},
		{"probability above one", func(c *Config) { c.Feed.ReintroduceProbability = 1.2 }},
		{"no bands", func(c *Config) { c.Feed.StreakBands = nil }},
		{"bands not increasing", func(c *Config) {
			c.Feed.StreakBands = []StreakBand{{0, 1}, {5, 2}, {5, 3}}
		}},
		{"multiplier decreasing", func(c *Config) {
			c.Feed.StreakBands = []StreakBand{{0, 2}, {3, 1.5}}
		}},
		{"first band not zero", func(c *Config) {
			c.Feed.StreakBands = []StreakBand{{1, 1}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[zpd]
target_success_rate = 0.8

[feed]
queue_capacity = 5
reintroduce_probability = 0.5

[[feed.streak_bands]]
min_streak = 0
multiplier = 1.0

[[feed.streak_bands]]
min_streak = 4
multiplier = 2.0
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.8, cfg.ZPD.TargetSuccessRate)
	assert.Equal(t, 5, cfg.Feed.QueueCapacity)
	assert.Equal(t, 0.5, cfg.Feed.ReintroduceProbability)
	assert.Len(t, cfg.Feed.StreakBands, 2)
	// Untouched sections keep defaults.
	assert.Equal(t, Default().Mastery, cfg.Mastery)
	assert.Equal(t, Default().Feed.CooldownTurns, cfg.Feed.CooldownTurns)
}

func TestLoad_InvalidMergeFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[mastery]\nslip_rate = 2.0\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
