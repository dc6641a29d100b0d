package bkt

import "fmt"

// Epsilon is the probability clamp bound used before Bayesian updates.
// Probabilities are kept inside (Epsilon, 1-Epsilon) so the logit and the
// posterior denominator stay finite.
const Epsilon = 1e-6

// Params holds the knowledge tracing parameters for a concept.
type Params struct {
	// Prior is the initial probability of mastery before any evidence.
	Prior float64 `json:"prior"`
	// LearnRate is the probability of transitioning to mastered after a practice opportunity.
	LearnRate float64 `json:"learn_rate"`
	// SlipRate is the probability of answering incorrectly despite mastery.
	SlipRate float64 `json:"slip_rate"`
	// GuessRate is the probability of answering correctly despite non-mastery.
	GuessRate float64 `json:"guess_rate"`
}

// Validate checks that every rate lies in [0,1].
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"prior", p.Prior},
		{"learn_rate", p.LearnRate},
		{"slip_rate", p.SlipRate},
		{"guess_rate", p.GuessRate},
	}
	for _, c := range checks {
		if c.value != c.value || c.value < 0 || c.value > 1 {
			return &ErrInvalidParameter{Name: c.name, Value: c.value}
		}
	}
	return nil
}

// ErrInvalidParameter indicates a model rate outside [0,1].
// Fatal at startup: a misconfigured model must never grade answers.
type ErrInvalidParameter struct {
	Name  string
	Value float64
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid knowledge tracing parameter %s = %v (want [0,1])", e.Name, e.Value)
}

// ErrNumericDegeneracy indicates a probability that remained invalid after
// clamping. The update that produced it is abandoned and the previous state
// retained.
type ErrNumericDegeneracy struct {
	Quantity string
	Value    float64
}

func (e *ErrNumericDegeneracy) Error() string {
	return fmt.Sprintf("numeric degeneracy in %s = %v", e.Quantity, e.Value)
}
