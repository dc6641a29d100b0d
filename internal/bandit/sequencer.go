// Package bandit sequences concepts with Thompson Sampling.
//
// Each concept carries an Arm of Beta pseudo-counts over "value of
// practicing this concept now". Selection draws one sample per eligible
// arm and takes the best draw, trading exploitation of productive concepts
// against exploration of under-tried ones. The random source is injected
// so tests can replay exact selection sequences.
package bandit

import (
	"errors"
	"math"
	"math/rand"
	"sort"
)

// ErrNoEligibleConcepts is returned when the eligible set is empty.
var ErrNoEligibleConcepts = errors.New("no eligible concepts to sequence")

// Sequencer chooses the next concept to practice.
type Sequencer struct {
	rng *rand.Rand
}

// NewSequencer creates a sequencer around the given random source.
func NewSequencer(rng *rand.Rand) *Sequencer {
	return &Sequencer{rng: rng}
}

// ChooseNext draws one Beta(successes+1, failures+1) sample per eligible
// concept and returns the concept with the highest draw. Concepts absent
// from arms are treated as fresh uniform arms. Identical maximal draws
// break toward the lowest concept ID so selection is reproducible for
// identical random sequences.
func (s *Sequencer) ChooseNext(arms map[string]*Arm, eligible []string) (string, error) {
	if len(eligible) == 0 {
		return "", ErrNoEligibleConcepts
	}

	// Sorted iteration keeps the draw-to-concept pairing deterministic
	// for a seeded source.
	ids := make([]string, len(eligible))
	copy(ids, eligible)
	sort.Strings(ids)

	best := ""
	bestSample := math.Inf(-1)
	for _, id := range ids {
		arm := arms[id]
		if arm == nil {
			arm = &Arm{}
		}
		sample := s.sampleBeta(arm.Successes+1, arm.Failures+1)
		if sample > bestSample {
			best = id
			bestSample = sample
		}
	}
	return best, nil
}

// sampleBeta draws from Beta(a, b) via two gamma draws.
func (s *Sequencer) sampleBeta(a, b float64) float64 {
	x := s.sampleGamma(a)
	y := s.sampleGamma(b)
	if x+y == 0 {
		return 0.5
	}
	return x / (x + y)
}

// sampleGamma draws from Gamma(shape, 1) using Marsaglia-Tsang.
// Callers always pass shape >= 1 (pseudo-counts plus one).
func (s *Sequencer) sampleGamma(shape float64) float64 {
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		x := s.rng.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := s.rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}
