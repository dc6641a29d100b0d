package zpd

import (
	"math"
	"testing"
)

func TestSelectDifficulty_MonotoneInMastery(t *testing.T) {
	prev := -1.0
	for p := 0.05; p <= 0.95; p += 0.05 {
		d := SelectDifficulty(p, 0.75)
		if d < prev {
			t.Fatalf("difficulty decreased: mastery %v -> %v (prev %v)", p, d, prev)
		}
		if d < 0 || d > 1 {
			t.Fatalf("difficulty %v out of [0,1] at mastery %v", d, p)
		}
		prev = d
	}
}

func TestSelectDifficulty_HitsTargetWithinClamp(t *testing.T) {
	// Where the unclamped difficulty lands inside [0,1], the predicted
	// success at the returned difficulty equals the target.
	for _, p := range []float64{0.75, 0.8, 0.85} {
		d := SelectDifficulty(p, 0.75)
		if d <= 0 || d >= 1 {
			continue // clamped, target unreachable by design
		}
		got := PredictedSuccess(p, d)
		if math.Abs(got-0.75) > 1e-9 {
			t.Errorf("mastery %v: predicted success %v, want 0.75", p, got)
		}
	}
}

func TestSelectDifficulty_ExtremeProbabilities(t *testing.T) {
	for _, p := range []float64{0, 1, math.NaN()} {
		d := SelectDifficulty(p, 0.75)
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 || d > 1 {
			t.Errorf("mastery %v: difficulty %v, want finite in [0,1]", p, d)
		}
	}
	if d := SelectDifficulty(0.5, 0); math.IsNaN(d) || d < 0 || d > 1 {
		t.Errorf("target 0: difficulty %v, want finite in [0,1]", d)
	}
}

func TestMomentum_NudgesUpAfterCorrectRun(t *testing.T) {
	m := Momentum{StreakThreshold: 3, Step: 0.05, Cap: 0.15}
	base := 0.5
	if got := m.Adjust(base, 2, 0); got != base {
		t.Errorf("below threshold: got %v, want %v", got, base)
	}
	if got := m.Adjust(base, 3, 0); got != base+0.05 {
		t.Errorf("at threshold: got %v, want %v", got, base+0.05)
	}
	if got := m.Adjust(base, 10, 0); got != base+0.15 {
		t.Errorf("long run capped: got %v, want %v", got, base+0.15)
	}
}

func TestMomentum_SymmetricDownNudge(t *testing.T) {
	m := Momentum{StreakThreshold: 3, Step: 0.05, Cap: 0.15}
	if got := m.Adjust(0.5, 0, 4); got != 0.5-0.10 {
		t.Errorf("wrong run: got %v, want %v", got, 0.40)
	}
}

func TestMomentum_NeverLeavesUnitInterval(t *testing.T) {
	m := Momentum{StreakThreshold: 1, Step: 0.5, Cap: 2}
	if got := m.Adjust(0.9, 10, 0); got != 1 {
		t.Errorf("upper clamp: got %v, want 1", got)
	}
	if got := m.Adjust(0.1, 0, 10); got != 0 {
		t.Errorf("lower clamp: got %v, want 0", got)
	}
}
