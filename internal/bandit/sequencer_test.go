package bandit

import (
	"math"
	"math/rand"
	"testing"
)

func TestArm_Update(t *testing.T) {
	arm := &Arm{}
	if err := arm.Update(1); err != nil {
		t.Fatalf("update(1): %v", err)
	}
	if err := arm.Update(0); err != nil {
		t.Fatalf("update(0): %v", err)
	}
	if arm.Successes != 1 || arm.Failures != 1 {
		t.Errorf("arm = %+v, want (1,1)", arm)
	}
	if err := arm.Update(2); err == nil {
		t.Error("update(2): want error for non-binary reward")
	}
}

func TestArm_Mean(t *testing.T) {
	arm := &Arm{}
	if got := arm.Mean(); got != 0.5 {
		t.Errorf("fresh arm mean = %v, want 0.5", got)
	}
	arm = &Arm{Successes: 8, Failures: 2}
	if got := arm.Mean(); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("mean = %v, want 0.75", got)
	}
}

func TestChooseNext_EmptyEligible(t *testing.T) {
	seq := NewSequencer(rand.New(rand.NewSource(1)))
	_, err := seq.ChooseNext(nil, nil)
	if err != ErrNoEligibleConcepts {
		t.Fatalf("err = %v, want ErrNoEligibleConcepts", err)
	}
}

func TestChooseNext_IdenticalArmsSplitEvenly(t *testing.T) {
	seq := NewSequencer(rand.New(rand.NewSource(42)))
	arms := map[string]*Arm{
		"a": {Successes: 3, Failures: 3},
		"b": {Successes: 3, Failures: 3},
	}
	counts := map[string]int{}
	const trials = 4000
	for i := 0; i < trials; i++ {
		id, err := seq.ChooseNext(arms, []string{"a", "b"})
		if err != nil {
			t.Fatalf("choose: %v", err)
		}
		counts[id]++
	}
	ratio := float64(counts["a"]) / trials
	if ratio < 0.45 || ratio > 0.55 {
		t.Errorf("identical arms: a chosen %.3f of trials, want ~0.5", ratio)
	}
}

func TestChooseNext_BiasedButStillExplores(t *testing.T) {
	seq := NewSequencer(rand.New(rand.NewSource(7)))
	arms := map[string]*Arm{
		"strong": {Successes: 40, Failures: 2},
		"weak":   {Successes: 2, Failures: 40},
	}
	counts := map[string]int{}
	const trials = 4000
	for i := 0; i < trials; i++ {
		id, err := seq.ChooseNext(arms, []string{"strong", "weak"})
		if err != nil {
			t.Fatalf("choose: %v", err)
		}
		counts[id]++
	}
	if counts["strong"] <= counts["weak"] {
		t.Errorf("strong chosen %d vs weak %d, want bias toward strong", counts["strong"], counts["weak"])
	}
	if counts["weak"] == 0 {
		t.Error("weak never chosen: exploration lost")
	}
}

func TestChooseNext_FreshArmTreatedUniform(t *testing.T) {
	seq := NewSequencer(rand.New(rand.NewSource(3)))
	// "unseen" has no arm entry; it must still win sometimes.
	arms := map[string]*Arm{"seen": {Successes: 5, Failures: 5}}
	won := false
	for i := 0; i < 500; i++ {
		id, err := seq.ChooseNext(arms, []string{"seen", "unseen"})
		if err != nil {
			t.Fatalf("choose: %v", err)
		}
		if id == "unseen" {
			won = true
			break
		}
	}
	if !won {
		t.Error("fresh arm never selected in 500 trials")
	}
}

func TestChooseNext_DeterministicForSeed(t *testing.T) {
	arms := map[string]*Arm{
		"a": {Successes: 1, Failures: 2},
		"b": {Successes: 2, Failures: 1},
		"c": {},
	}
	eligible := []string{"c", "a", "b"} // unsorted on purpose

	run := func() []string {
		seq := NewSequencer(rand.New(rand.NewSource(99)))
		var picks []string
		for i := 0; i < 20; i++ {
			id, err := seq.ChooseNext(arms, eligible)
			if err != nil {
				t.Fatalf("choose: %v", err)
			}
			picks = append(picks, id)
		}
		return picks
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("selection diverged at %d: %v vs %v", i, first, second)
		}
	}
}
