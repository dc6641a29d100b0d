package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with pointer fields so absent keys are
// distinguishable from zero values when merging over defaults.
type fileConfig struct {
	Mastery struct {
		Prior             *float64 `toml:"prior"`
		LearnRate         *float64 `toml:"learn_rate"`
		SlipRate          *float64 `toml:"slip_rate"`
		GuessRate         *float64 `toml:"guess_rate"`
		MasteredThreshold *float64 `toml:"mastered_threshold"`
	} `toml:"mastery"`
	ZPD struct {
		TargetSuccessRate *float64 `toml:"target_success_rate"`
		MomentumStreak    *int     `toml:"momentum_streak"`
		MomentumStep      *float64 `toml:"momentum_step"`
		MomentumCap       *float64 `toml:"momentum_cap"`
	} `toml:"zpd"`
	Feed struct {
		QueueCapacity          *int         `toml:"queue_capacity"`
		CooldownTurns          *int         `toml:"cooldown_turns"`
		ReintroduceProbability *float64     `toml:"reintroduce_probability"`
		ForceReintroduceAt     *float64     `toml:"force_reintroduce_at"`
		BaseXP                 *int         `toml:"base_xp"`
		XPDifficultyBonus      *int         `toml:"xp_difficulty_bonus"`
		StreakBands            []StreakBand `toml:"streak_bands"`
		FastAnswerMs           *int64       `toml:"fast_answer_ms"`
		DeltaWindow            *int         `toml:"delta_window"`
		RewardThreshold        *float64     `toml:"reward_threshold"`
	} `toml:"feed"`
	Calibration struct {
		OverconfidenceThreshold *float64 `toml:"overconfidence_threshold"`
		MinSamples              *int     `toml:"min_samples"`
	} `toml:"calibration"`
}

// Load reads the TOML file at path and merges it over the defaults.
// A missing file is not an error: defaults apply. The merged result is
// validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			var fc fileConfig
			if _, err := toml.DecodeFile(path, &fc); err != nil {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
			applyFile(&cfg, &fc)
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyFile(cfg *Config, fc *fileConfig) {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setI := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	setF(&cfg.Mastery.Prior, fc.Mastery.Prior)
	setF(&cfg.Mastery.LearnRate, fc.Mastery.LearnRate)
	setF(&cfg.Mastery.SlipRate, fc.Mastery.SlipRate)
	setF(&cfg.Mastery.GuessRate, fc.Mastery.GuessRate)
	setF(&cfg.Mastery.MasteredThreshold, fc.Mastery.MasteredThreshold)

	setF(&cfg.ZPD.TargetSuccessRate, fc.ZPD.TargetSuccessRate)
	setI(&cfg.ZPD.MomentumStreak, fc.ZPD.MomentumStreak)
	setF(&cfg.ZPD.MomentumStep, fc.ZPD.MomentumStep)
	setF(&cfg.ZPD.MomentumCap, fc.ZPD.MomentumCap)

	setI(&cfg.Feed.QueueCapacity, fc.Feed.QueueCapacity)
	setI(&cfg.Feed.CooldownTurns, fc.Feed.CooldownTurns)
	setF(&cfg.Feed.ReintroduceProbability, fc.Feed.ReintroduceProbability)
	setF(&cfg.Feed.ForceReintroduceAt, fc.Feed.ForceReintroduceAt)
	setI(&cfg.Feed.BaseXP, fc.Feed.BaseXP)
	setI(&cfg.Feed.XPDifficultyBonus, fc.Feed.XPDifficultyBonus)
	if len(fc.Feed.StreakBands) > 0 {
		cfg.Feed.StreakBands = fc.Feed.StreakBands
	}
	if fc.Feed.FastAnswerMs != nil {
		cfg.Feed.FastAnswerMs = *fc.Feed.FastAnswerMs
	}
	setI(&cfg.Feed.DeltaWindow, fc.Feed.DeltaWindow)
	setF(&cfg.Feed.RewardThreshold, fc.Feed.RewardThreshold)

	setF(&cfg.Calibration.OverconfidenceThreshold, fc.Calibration.OverconfidenceThreshold)
	setI(&cfg.Calibration.MinSamples, fc.Calibration.MinSamples)
}

// DefaultPath resolves the config file location:
// $SKILLSCROLL_CONFIG, then $XDG_CONFIG_HOME/skillscroll/config.toml,
// then ~/.config/skillscroll/config.toml.
func DefaultPath() string {
	if p := os.Getenv("SKILLSCROLL_CONFIG"); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "skillscroll", "config.toml")
}
