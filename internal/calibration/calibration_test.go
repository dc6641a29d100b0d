package calibration

import (
	"math"
	"testing"
)

func rec(concept string, correct bool, conf float64) Record {
	return Record{ConceptID: concept, Correct: correct, Confidence: conf}
}

func TestCompute_EmptyHistory(t *testing.T) {
	r := Compute(nil)
	if r.Samples != 0 || r.CalibrationError != 0 || r.BrierScore != 0 || len(r.Buckets) != 0 {
		t.Errorf("empty history: got %+v, want zero report", r)
	}
}

func TestCompute_PerfectlyCalibrated(t *testing.T) {
	// Confidence always matches the outcome exactly (0 or 100).
	var history []Record
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			history = append(history, rec("c1", true, 100))
		} else {
			history = append(history, rec("c1", false, 0))
		}
	}
	r := Compute(history)
	if r.CalibrationError > 1e-9 {
		t.Errorf("CalibrationError = %v, want ~0", r.CalibrationError)
	}
	if r.BrierScore > 1e-9 {
		t.Errorf("BrierScore = %v, want ~0", r.BrierScore)
	}
	if r.Samples != 20 {
		t.Errorf("Samples = %d, want 20", r.Samples)
	}
}

func TestCompute_ConfidentlyWrong(t *testing.T) {
	var history []Record
	for i := 0; i < 10; i++ {
		history = append(history, rec("c1", false, 90))
	}
	r := Compute(history)
	// All responses land in the [90,100) bin with accuracy 0.
	if got := math.Abs(r.CalibrationError - 0.9); got > 1e-9 {
		t.Errorf("CalibrationError = %v, want 0.9", r.CalibrationError)
	}
	if got := math.Abs(r.BrierScore - 0.81); got > 1e-9 {
		t.Errorf("BrierScore = %v, want 0.81", r.BrierScore)
	}
}

func TestCompute_BucketBoundaries(t *testing.T) {
	history := []Record{
		rec("c1", true, 0),   // first bin
		rec("c1", true, 100), // clamps into last bin
		rec("c1", true, 55),  // sixth bin
	}
	r := Compute(history)
	if len(r.Buckets) != 3 {
		t.Fatalf("len(Buckets) = %d, want 3", len(r.Buckets))
	}
	last := r.Buckets[len(r.Buckets)-1]
	if last.Low != 90 || last.High != 100 {
		t.Errorf("last bucket bounds = [%v,%v], want [90,100]", last.Low, last.High)
	}
}

func TestOverconfident_FlagsConfidentlyWrongConcept(t *testing.T) {
	var history []Record
	for i := 0; i < 5; i++ {
		history = append(history, rec("fractions", false, 90))
	}
	// Well-calibrated concept should not be flagged.
	for i := 0; i < 5; i++ {
		history = append(history, rec("addition", true, 80))
	}
	got := Overconfident(history, 0.25, 5)
	if len(got) != 1 || got[0] != "fractions" {
		t.Errorf("Overconfident = %v, want [fractions]", got)
	}
}

func TestOverconfident_MinSamplesGate(t *testing.T) {
	var history []Record
	for i := 0; i < 4; i++ {
		history = append(history, rec("fractions", false, 95))
	}
	if got := Overconfident(history, 0.25, 5); len(got) != 0 {
		t.Errorf("Overconfident = %v, want none below min sample count", got)
	}
	history = append(history, rec("fractions", false, 95))
	if got := Overconfident(history, 0.25, 5); len(got) != 1 {
		t.Errorf("Overconfident = %v, want [fractions] at min sample count", got)
	}
}

func TestOverconfident_SortedOutput(t *testing.T) {
	var history []Record
	for _, id := range []string{"z-concept", "a-concept"} {
		for i := 0; i < 3; i++ {
			history = append(history, rec(id, false, 100))
		}
	}
	got := Overconfident(history, 0.5, 3)
	if len(got) != 2 || got[0] != "a-concept" || got[1] != "z-concept" {
		t.Errorf("Overconfident = %v, want sorted [a-concept z-concept]", got)
	}
}
