// Package calibration analyzes how well a learner's stated confidence
// tracks their actual accuracy.
//
// The input is the ordered history of graded responses with stated
// confidence in [0,100]. Compute produces a bucketed confidence/accuracy
// curve, the expected calibration error and the Brier score; Overconfident
// flags concepts where confidence runs well ahead of accuracy.
package calibration

import (
	"sort"
	"time"
)

// NumBuckets is the number of equal-width confidence bins over [0,100].
const NumBuckets = 10

// Record is one graded answer with the learner's stated confidence.
// Immutable once created.
type Record struct {
	ConceptID  string    `json:"concept_id"`
	Correct    bool      `json:"correct"`
	Confidence float64   `json:"confidence"` // stated, in [0,100]
	LatencyMs  int64     `json:"latency_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

// Bucket is one confidence bin of the calibration curve.
type Bucket struct {
	// Low and High bound the bin's stated-confidence range, in [0,100].
	Low  float64 `json:"low"`
	High float64 `json:"high"`
	// MeanConfidence is the mean stated confidence of responses in the bin.
	MeanConfidence float64 `json:"mean_confidence"`
	// Accuracy is the observed fraction correct in the bin.
	Accuracy float64 `json:"accuracy"`
	// Count is the number of responses in the bin.
	Count int `json:"count"`
}

// Report holds the aggregate calibration metrics for a history.
type Report struct {
	// Buckets contains only the non-empty confidence bins, in order.
	Buckets []Bucket `json:"buckets"`
	// CalibrationError is the expected calibration error: the count-weighted
	// mean absolute gap between stated confidence and observed accuracy.
	CalibrationError float64 `json:"calibration_error"`
	// BrierScore is the mean squared error between confidence/100 and the
	// binary outcome. Lower is better; range [0,1].
	BrierScore float64 `json:"brier_score"`
	// Samples is the total number of responses analyzed.
	Samples int `json:"samples"`
}

// Compute builds the calibration report for a response history.
// An empty history yields a zero Report, not an error.
func Compute(history []Record) Report {
	if len(history) == 0 {
		return Report{}
	}

	type acc struct {
		confSum float64
		correct int
		count   int
	}
	bins := make([]acc, NumBuckets)
	width := 100.0 / NumBuckets

	var brierSum float64
	for _, r := range history {
		conf := clamp(r.Confidence, 0, 100)
		idx := int(conf / width)
		if idx >= NumBuckets {
			idx = NumBuckets - 1 // confidence exactly 100
		}
		bins[idx].confSum += conf
		bins[idx].count++
		outcome := 0.0
		if r.Correct {
			bins[idx].correct++
			outcome = 1.0
		}
		diff := conf/100 - outcome
		brierSum += diff * diff
	}

	report := Report{Samples: len(history)}
	var eceSum float64
	for i, b := range bins {
		if b.count == 0 {
			continue
		}
		bucket := Bucket{
			Low:            float64(i) * width,
			High:           float64(i+1) * width,
			MeanConfidence: b.confSum / float64(b.count),
			Accuracy:       float64(b.correct) / float64(b.count),
			Count:          b.count,
		}
		report.Buckets = append(report.Buckets, bucket)
		gap := bucket.MeanConfidence/100 - bucket.Accuracy
		if gap < 0 {
			gap = -gap
		}
		eceSum += gap * float64(b.count)
	}
	report.CalibrationError = eceSum / float64(len(history))
	report.BrierScore = brierSum / float64(len(history))
	return report
}

// Overconfident returns the concepts whose mean stated confidence exceeds
// observed accuracy by more than threshold (both on the [0,1] scale).
// Concepts with fewer than minSamples responses are never flagged: sparse
// evidence must not produce false positives. Results are sorted by ID.
func Overconfident(history []Record, threshold float64, minSamples int) []string {
	type acc struct {
		confSum float64
		correct int
		count   int
	}
	byConcept := make(map[string]*acc)
	for _, r := range history {
		a := byConcept[r.ConceptID]
		if a == nil {
			a = &acc{}
			byConcept[r.ConceptID] = a
		}
		a.confSum += clamp(r.Confidence, 0, 100)
		a.count++
		if r.Correct {
			a.correct++
		}
	}

	var flagged []string
	for id, a := range byConcept {
		if a.count < minSamples {
			continue
		}
		meanConf := a.confSum / float64(a.count) / 100
		accuracy := float64(a.correct) / float64(a.count)
		if meanConf-accuracy > threshold {
			flagged = append(flagged, id)
		}
	}
	sort.Strings(flagged)
	return flagged
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
