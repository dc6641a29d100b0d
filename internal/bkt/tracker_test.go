package bkt

import (
	"errors"
	"math"
	"testing"
)

func defaultParams() Params {
	return Params{Prior: 0.25, LearnRate: 0.15, SlipRate: 0.1, GuessRate: 0.2}
}

func TestUpdate_CorrectRaisesMastery(t *testing.T) {
	s := NewState(defaultParams())

	next, err := Update(s, true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if next.PMastered <= s.PMastered {
		t.Errorf("PMastered = %v, want > %v after correct answer", next.PMastered, s.PMastered)
	}
	if next.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", next.Attempts)
	}
	// Input state is untouched.
	if s.Attempts != 0 || s.PMastered != 0.25 {
		t.Errorf("input state mutated: %+v", s)
	}
}

func TestUpdate_IncorrectLowersPosterior(t *testing.T) {
	p := defaultParams()
	p.LearnRate = 0 // isolate the Bayesian step from the learning transition
	s := NewState(p)

	next, err := Update(s, false)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if next.PMastered >= s.PMastered {
		t.Errorf("PMastered = %v, want < %v after wrong answer with zero learn rate", next.PMastered, s.PMastered)
	}
}

func TestUpdate_ProbabilityStaysInRange(t *testing.T) {
	params := []Params{
		{Prior: 0, LearnRate: 0, SlipRate: 0, GuessRate: 0.5},
		{Prior: 1, LearnRate: 1, SlipRate: 0.3, GuessRate: 0.3},
		{Prior: 0.5, LearnRate: 0.99, SlipRate: 0.01, GuessRate: 0.99},
	}
	for _, p := range params {
		s := NewState(p)
		for i := 0; i < 50; i++ {
			var err error
			s, err = Update(s, i%3 != 0)
			if err != nil {
				t.Fatalf("params %+v: update %d: %v", p, i, err)
			}
			if s.PMastered < 0 || s.PMastered > 1 {
				t.Fatalf("params %+v: PMastered = %v out of [0,1]", p, s.PMastered)
			}
		}
	}
}

func TestUpdate_MonotoneNonDecreasingOnCorrect(t *testing.T) {
	s := NewState(defaultParams())
	prev := s.PMastered
	for i := 0; i < 20; i++ {
		var err error
		s, err = Update(s, true)
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		if s.PMastered < prev {
			t.Fatalf("PMastered decreased on correct answer: %v -> %v", prev, s.PMastered)
		}
		prev = s.PMastered
	}
}

func TestUpdate_InvalidParameter(t *testing.T) {
	bad := []Params{
		{Prior: -0.1, LearnRate: 0.1, SlipRate: 0.1, GuessRate: 0.1},
		{Prior: 0.1, LearnRate: 1.1, SlipRate: 0.1, GuessRate: 0.1},
		{Prior: 0.1, LearnRate: 0.1, SlipRate: math.NaN(), GuessRate: 0.1},
	}
	for _, p := range bad {
		s := NewState(p)
		before := s
		_, err := Update(s, true)
		var perr *ErrInvalidParameter
		if !errors.As(err, &perr) {
			t.Errorf("params %+v: err = %v, want ErrInvalidParameter", p, err)
		}
		if s != before {
			t.Errorf("params %+v: state mutated on failed update", p)
		}
	}
}

func TestUpdate_DegenerateEmission(t *testing.T) {
	// slip=1 and guess=0 makes a correct observation impossible under both
	// hypotheses: the posterior denominator collapses.
	s := NewState(Params{Prior: 0.5, LearnRate: 0.1, SlipRate: 1, GuessRate: 0})
	_, err := Update(s, true)
	var derr *ErrNumericDegeneracy
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want ErrNumericDegeneracy", err)
	}
}

func TestUpdate_ClampsExtremePrior(t *testing.T) {
	p := defaultParams()
	s := NewState(p)
	s.PMastered = 1.0 // exactly 1 must not break the update
	next, err := Update(s, false)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if next.PMastered <= 0 || next.PMastered > 1 {
		t.Errorf("PMastered = %v, want (0,1]", next.PMastered)
	}
}
