// Package bkt implements two-parameter Bayesian Knowledge Tracing.
//
// Each concept a learner has seen carries a State: the current probability
// of mastery plus the model parameters that drive its updates. Update is a
// pure function of (state, observed correctness); callers never set the
// probability directly.
package bkt

// State is the per-(learner, concept) mastery estimate.
type State struct {
	// PMastered is the current probability the concept is mastered.
	PMastered float64 `json:"p_mastered"`
	// Attempts counts graded responses applied to this state.
	Attempts int `json:"attempts"`
	// Params are the model parameters used for updates.
	Params Params `json:"params"`
}

// NewState creates a fresh state seeded from the parameter prior.
func NewState(p Params) State {
	return State{PMastered: p.Prior, Params: p}
}

// Update applies one graded observation and returns the posterior state.
// Pure: the receiver-by-value input is never mutated. Mastery can only
// increase or hold on the learning transition; it never decays here.
func Update(s State, correct bool) (State, error) {
	if err := s.Params.Validate(); err != nil {
		return s, err
	}
	if s.PMastered != s.PMastered {
		return s, &ErrNumericDegeneracy{Quantity: "p_mastered", Value: s.PMastered}
	}

	prior := clamp(s.PMastered, Epsilon, 1-Epsilon)

	// Emission model: P(correct|mastered) = 1-slip, P(correct|not mastered) = guess.
	pObsMastered := 1 - s.Params.SlipRate
	pObsNotMastered := s.Params.GuessRate
	if !correct {
		pObsMastered = s.Params.SlipRate
		pObsNotMastered = 1 - s.Params.GuessRate
	}

	den := pObsMastered*prior + pObsNotMastered*(1-prior)
	if den < Epsilon {
		// Only reachable with degenerate slip/guess configurations
		// (e.g. slip=1, guess=0 on a correct answer).
		return s, &ErrNumericDegeneracy{Quantity: "posterior denominator", Value: den}
	}
	posterior := pObsMastered * prior / den

	// Learning transition: a practice opportunity may teach the concept.
	next := posterior + (1-posterior)*s.Params.LearnRate

	s.PMastered = clamp(next, 0, 1)
	s.Attempts++
	return s, nil
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
