// Package zpd selects question difficulty inside the learner's zone of
// proximal development: hard enough to teach, easy enough to land near a
// target success rate.
//
// Success is modeled as a logistic function of (ability - difficulty) where
// ability is the logit of the mastery probability. Inverting the logistic
// at the target success rate gives the difficulty whose predicted success
// sits on the target.
package zpd

import "math"

// epsilon keeps probabilities away from 0 and 1 before taking logits.
const epsilon = 1e-6

// SelectDifficulty returns the difficulty in [0,1] whose predicted success
// probability equals targetSuccess for a learner at the given mastery
// probability. Inputs are clamped into (epsilon, 1-epsilon) so logit never
// sees 0 or 1.
func SelectDifficulty(masteryProb, targetSuccess float64) float64 {
	ability := logit(clampProb(masteryProb))
	difficulty := ability - logit(clampProb(targetSuccess))
	return clamp(difficulty, 0, 1)
}

// PredictedSuccess returns the modeled success probability for a learner at
// the given mastery probability attempting the given difficulty.
func PredictedSuccess(masteryProb, difficulty float64) float64 {
	ability := logit(clampProb(masteryProb))
	return 1 / (1 + math.Exp(-(ability - difficulty)))
}

// Momentum configures the streak-based difficulty nudge.
type Momentum struct {
	// StreakThreshold is the consecutive-answer run length that triggers a nudge.
	StreakThreshold int
	// Step is the nudge added per answer beyond the threshold.
	Step float64
	// Cap bounds the total nudge in either direction.
	Cap float64
}

// Adjust applies the momentum nudge to a ZPD difficulty. A run of
// consecutive correct answers at or beyond the threshold nudges difficulty
// up; a run of consecutive wrong answers nudges it down symmetrically. The
// nudge never exceeds Cap and the result never leaves [0,1].
func (m Momentum) Adjust(difficulty float64, consecutiveCorrect, consecutiveWrong int) float64 {
	if m.StreakThreshold <= 0 {
		return clamp(difficulty, 0, 1)
	}
	var nudge float64
	switch {
	case consecutiveCorrect >= m.StreakThreshold:
		nudge = m.Step * float64(consecutiveCorrect-m.StreakThreshold+1)
	case consecutiveWrong >= m.StreakThreshold:
		nudge = -m.Step * float64(consecutiveWrong-m.StreakThreshold+1)
	}
	nudge = clamp(nudge, -m.Cap, m.Cap)
	return clamp(difficulty+nudge, 0, 1)
}

func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

func clampProb(p float64) float64 {
	if p != p {
		return 0.5 // NaN input gets the uninformative midpoint
	}
	return clamp(p, epsilon, 1-epsilon)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
