package feed

import (
	"time"

	"github.com/abhisek/skillscroll/internal/calibration"
	"github.com/abhisek/skillscroll/internal/content"
)

// Response is a learner's answer to the outstanding card.
type Response struct {
	CardID string
	Answer string
	// StatedConfidence is the learner's self-reported confidence in [0,100].
	StatedConfidence float64
	LatencyMs        int64
}

// TurnResult reports one completed grading transition.
type TurnResult struct {
	Correct      bool
	XPAwarded    int
	Multiplier   float64
	Streak       int
	BestStreak   int
	TotalXP      int
	Turn         int
	MasteryDelta float64
	// PMastered is the post-update mastery probability of the graded concept.
	PMastered float64
	// NextCard is the newly issued card awaiting the next response.
	NextCard *content.ScrollCard
	// Remediation marks NextCard as resurfaced from the remediation queue.
	Remediation bool
}

// Summary closes out a session.
type Summary struct {
	SessionID      string
	Turns          int
	CorrectAnswers int
	XP             int
	BestStreak     int
	Duration       time.Duration
	FastAnswers    int
	SlowAnswers    int
	// Mastery maps each practiced concept to its final mastery probability.
	Mastery map[string]float64
	// Calibration is the confidence-vs-accuracy report over the session.
	Calibration calibration.Report
	// Overconfident lists concepts whose stated confidence ran well ahead
	// of accuracy.
	Overconfident []string
}
