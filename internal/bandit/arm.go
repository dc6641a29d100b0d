package bandit

import "fmt"

// Arm is a concept's belief over the value of practicing it now, held as
// Beta pseudo-counts. A fresh arm is (0,0): a uniform prior.
type Arm struct {
	Successes float64 `json:"successes"`
	Failures  float64 `json:"failures"`
}

// Update folds one binary reward into the arm's pseudo-counts.
func (a *Arm) Update(reward int) error {
	switch reward {
	case 1:
		a.Successes++
	case 0:
		a.Failures++
	default:
		return fmt.Errorf("reward must be 0 or 1, got %d", reward)
	}
	return nil
}

// Pulls returns the total number of observed rewards.
func (a *Arm) Pulls() float64 {
	return a.Successes + a.Failures
}

// Mean returns the posterior mean practice value, Beta(s+1, f+1).
func (a *Arm) Mean() float64 {
	return (a.Successes + 1) / (a.Pulls() + 2)
}
