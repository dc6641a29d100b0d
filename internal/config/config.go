// Package config holds the named tunables of the decision core and loads
// overrides from a TOML file. Every behavioral constant the feed exposes
// through tests lives here rather than as a hidden literal.
package config

import (
	"fmt"

	"github.com/abhisek/skillscroll/internal/bkt"
)

// StreakBand maps a minimum streak length to an XP multiplier.
// Bands are ordered by MinStreak ascending; the last band whose MinStreak
// is <= the current streak applies.
type StreakBand struct {
	MinStreak  int     `toml:"min_streak"`
	Multiplier float64 `toml:"multiplier"`
}

// MasteryConfig configures the knowledge tracing model.
type MasteryConfig struct {
	Prior     float64 `toml:"prior"`
	LearnRate float64 `toml:"learn_rate"`
	SlipRate  float64 `toml:"slip_rate"`
	GuessRate float64 `toml:"guess_rate"`
	// MasteredThreshold is the mastery probability at which a concept
	// counts as mastered for prerequisite gating.
	MasteredThreshold float64 `toml:"mastered_threshold"`
}

// Params returns the BKT parameters for a fresh concept state.
func (m MasteryConfig) Params() bkt.Params {
	return bkt.Params{Prior: m.Prior, LearnRate: m.LearnRate, SlipRate: m.SlipRate, GuessRate: m.GuessRate}
}

// ZPDConfig configures difficulty selection.
type ZPDConfig struct {
	TargetSuccessRate float64 `toml:"target_success_rate"`
	MomentumStreak    int     `toml:"momentum_streak"`
	MomentumStep      float64 `toml:"momentum_step"`
	MomentumCap       float64 `toml:"momentum_cap"`
}

// FeedConfig configures the per-turn decision loop.
type FeedConfig struct {
	QueueCapacity          int          `toml:"queue_capacity"`
	CooldownTurns          int          `toml:"cooldown_turns"`
	ReintroduceProbability float64      `toml:"reintroduce_probability"`
	// ForceReintroduceAt is the queue fill fraction at which reintroduction
	// stops being probabilistic and becomes forced.
	ForceReintroduceAt float64      `toml:"force_reintroduce_at"`
	BaseXP             int          `toml:"base_xp"`
	XPDifficultyBonus  int          `toml:"xp_difficulty_bonus"`
	StreakBands        []StreakBand `toml:"streak_bands"`
	// FastAnswerMs splits response latencies into fast and slow for the
	// engagement counters.
	FastAnswerMs int64 `toml:"fast_answer_ms"`
	// DeltaWindow is how many recent difficulty deltas the state retains.
	DeltaWindow int `toml:"delta_window"`
	// RewardThreshold is the mastery gain that counts as meaningful
	// progress for the sequencer's reward signal.
	RewardThreshold float64 `toml:"reward_threshold"`
}

// CalibrationConfig configures overconfidence detection.
type CalibrationConfig struct {
	OverconfidenceThreshold float64 `toml:"overconfidence_threshold"`
	MinSamples              int     `toml:"min_samples"`
}

// Config is the full configuration of the decision core.
type Config struct {
	Mastery     MasteryConfig     `toml:"mastery"`
	ZPD         ZPDConfig         `toml:"zpd"`
	Feed        FeedConfig        `toml:"feed"`
	Calibration CalibrationConfig `toml:"calibration"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Mastery: MasteryConfig{
			Prior:             0.25,
			LearnRate:         0.15,
			SlipRate:          0.10,
			GuessRate:         0.20,
			MasteredThreshold: 0.95,
		},
		ZPD: ZPDConfig{
			TargetSuccessRate: 0.75,
			MomentumStreak:    3,
			MomentumStep:      0.03,
			MomentumCap:       0.12,
		},
		Feed: FeedConfig{
			QueueCapacity:          20,
			CooldownTurns:          3,
			ReintroduceProbability: 0.3,
			ForceReintroduceAt:     0.8,
			BaseXP:                 10,
			XPDifficultyBonus:      10,
			StreakBands: []StreakBand{
				{MinStreak: 0, Multiplier: 1.0},
				{MinStreak: 3, Multiplier: 1.5},
				{MinStreak: 6, Multiplier: 2.0},
			},
			FastAnswerMs:    5000,
			DeltaWindow:     10,
			RewardThreshold: 0.05,
		},
		Calibration: CalibrationConfig{
			OverconfidenceThreshold: 0.25,
			MinSamples:              5,
		},
	}
}

// Validate rejects configurations the decision core cannot run on.
// Called once at startup; failures are fatal.
func (c Config) Validate() error {
	if err := c.Mastery.Params().Validate(); err != nil {
		return err
	}
	if c.Mastery.MasteredThreshold <= 0 || c.Mastery.MasteredThreshold > 1 {
		return fmt.Errorf("mastery.mastered_threshold = %v, want (0,1]", c.Mastery.MasteredThreshold)
	}
	if c.ZPD.TargetSuccessRate <= 0 || c.ZPD.TargetSuccessRate >= 1 {
		return fmt.Errorf("zpd.target_success_rate = %v, want (0,1)", c.ZPD.TargetSuccessRate)
	}
	if c.ZPD.MomentumCap < 0 || c.ZPD.MomentumStep < 0 {
		return fmt.Errorf("zpd momentum step/cap must be non-negative")
	}
	if c.Feed.QueueCapacity < 1 {
		return fmt.Errorf("feed.queue_capacity = %d, want >= 1", c.Feed.QueueCapacity)
	}
	if c.Feed.CooldownTurns < 0 {
		return fmt.Errorf("feed.cooldown_turns = %d, want >= 0", c.Feed.CooldownTurns)
	}
	if c.Feed.ReintroduceProbability < 0 || c.Feed.ReintroduceProbability > 1 {
		return fmt.Errorf("feed.reintroduce_probability = %v, want [0,1]", c.Feed.ReintroduceProbability)
	}
	if len(c.Feed.StreakBands) == 0 {
		return fmt.Errorf("feed.streak_bands must not be empty")
	}
	prev := -1
	prevMult := 0.0
	for _, b := range c.Feed.StreakBands {
		if b.MinStreak <= prev {
			return fmt.Errorf("feed.streak_bands must be strictly increasing in min_streak")
		}
		if b.Multiplier <= 0 || b.Multiplier < prevMult {
			return fmt.Errorf("streak band multipliers must be positive and non-decreasing, got %v", b.Multiplier)
		}
		prev = b.MinStreak
		prevMult = b.Multiplier
	}
	if c.Feed.StreakBands[0].MinStreak != 0 {
		return fmt.Errorf("first streak band must start at 0")
	}
	if c.Calibration.MinSamples < 1 {
		return fmt.Errorf("calibration.min_samples = %d, want >= 1", c.Calibration.MinSamples)
	}
	return nil
}
