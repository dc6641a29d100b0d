package feed

import (
	"testing"
	"time"

	"github.com/abhisek/skillscroll/internal/config"
)

func testTime() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func TestXPAwardStreakBands(t *testing.T) {
	cfg := config.Default().Feed

	tests := []struct {
		name       string
		difficulty float64
		streak     int
		wantXP     int
		wantMult   float64
	}{
		{"base band", 0.0, 1, 10, 1.0},
		{"difficulty bonus", 0.5, 1, 15, 1.0},
		{"second band", 0.0, 3, 15, 1.5},
		{"top band", 0.0, 6, 20, 2.0},
		{"top band holds", 1.0, 12, 40, 2.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			xp, mult := XPAward(tc.difficulty, tc.streak, cfg)
			if xp != tc.wantXP || mult != tc.wantMult {
				t.Errorf("XPAward(%.1f, %d) = (%d, %.1f), want (%d, %.1f)",
					tc.difficulty, tc.streak, xp, mult, tc.wantXP, tc.wantMult)
			}
		})
	}
}

// Three consecutive correct answers must outscore the same three answers
// interrupted by a miss, because the interruption resets the streak
// multiplier.
func TestXPAwardRewardsUnbrokenStreaks(t *testing.T) {
	cfg := config.Default().Feed

	unbroken := 0
	for streak := 1; streak <= 3; streak++ {
		xp, _ := XPAward(0.5, streak, cfg)
		unbroken += xp
	}

	interrupted := 0
	for _, streak := range []int{1, 2, 1} { // miss between the 2nd and 3rd
		xp, _ := XPAward(0.5, streak, cfg)
		interrupted += xp
	}

	if unbroken <= interrupted {
		t.Errorf("unbroken run scored %d, interrupted scored %d; want strictly higher", unbroken, interrupted)
	}
}
