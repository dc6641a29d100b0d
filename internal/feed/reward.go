package feed

import (
	"math"

	"github.com/abhisek/skillscroll/internal/config"
)

// XPAward computes the XP for a correct answer. The base award grows with
// card difficulty and the total is scaled by the streak band the current
// streak falls into. Streak counts the answer being rewarded, so the third
// consecutive correct is scored with streak 3.
func XPAward(difficulty float64, streak int, cfg config.FeedConfig) (xp int, multiplier float64) {
	base := cfg.BaseXP + int(math.Round(difficulty*float64(cfg.XPDifficultyBonus)))
	multiplier = 1.0
	for _, band := range cfg.StreakBands {
		if streak >= band.MinStreak {
			multiplier = band.Multiplier
		}
	}
	return int(math.Round(float64(base) * multiplier)), multiplier
}
