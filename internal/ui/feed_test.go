package ui

import (
	"errors"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillscroll/internal/concepts"
	"github.com/abhisek/skillscroll/internal/config"
	"github.com/abhisek/skillscroll/internal/content"
	"github.com/abhisek/skillscroll/internal/feed"
)

var errTest = errors.New("boom")

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testModel(t *testing.T) Model {
	t.Helper()
	engine, err := feed.NewEngine(
		config.Default(),
		concepts.Default(),
		content.DefaultBank(),
		nil, nil,
		rand.New(rand.NewSource(11)),
	)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(engine, "ui-test")
}

func runCmd(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	next, _ := m.Update(cmd())
	return next
}

func startedModel(t *testing.T) Model {
	t.Helper()
	m := testModel(t)
	next := runCmd(t, m, m.startSession())
	got := next.(Model)
	if got.phase != phaseAnswering {
		t.Fatalf("phase after start = %d, want answering", got.phase)
	}
	if got.card == nil {
		t.Fatal("no card after session start")
	}
	return got
}

func TestModelStartsInLoadingPhase(t *testing.T) {
	m := testModel(t)
	if m.phase != phaseLoading {
		t.Errorf("initial phase = %d, want loading", m.phase)
	}
}

func TestAnswerThenConfidenceThenFeedback(t *testing.T) {
	m := startedModel(t)

	// Type an answer and submit: moves to the confidence prompt.
	m.answerInput.SetValue(m.card.Answer)
	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if m.phase != phaseConfidence {
		t.Fatalf("phase after answer submit = %d, want confidence", m.phase)
	}

	// Submit a confidence: runs the grading transition.
	m.confidenceInput.SetValue("80")
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if m.phase != phaseLoading {
		t.Fatalf("phase while grading = %d, want loading", m.phase)
	}
	m = runCmd(t, m, cmd).(Model)
	if m.phase != phaseFeedback {
		t.Fatalf("phase after grading = %d, want feedback", m.phase)
	}
	if m.lastResult == nil || !m.lastResult.Correct {
		t.Errorf("result = %+v, want correct", m.lastResult)
	}

	// Any key scrolls to the next card.
	next, _ = m.Update(keyPress(' '))
	m = next.(Model)
	if m.phase != phaseAnswering {
		t.Fatalf("phase after feedback dismiss = %d, want answering", m.phase)
	}
	if m.card == nil || m.card.ID != m.lastResult.NextCard.ID {
		t.Error("feed did not advance to the next card")
	}
}

func TestConfidenceRejectsOutOfRange(t *testing.T) {
	m := startedModel(t)
	m.answerInput.SetValue("7")
	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)

	m.confidenceInput.SetValue("150")
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if m.phase != phaseConfidence {
		t.Errorf("phase = %d, want to stay on confidence for out-of-range input", m.phase)
	}
	if cmd != nil {
		t.Error("out-of-range confidence dispatched a grade")
	}
}

func TestEscEndsSessionWithSummary(t *testing.T) {
	m := startedModel(t)
	next, cmd := m.Update(specialKey(tea.KeyEscape))
	m = next.(Model)
	if m.phase != phaseLoading {
		t.Fatalf("phase after esc = %d, want loading", m.phase)
	}
	m = runCmd(t, m, cmd).(Model)
	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", m.phase)
	}
	if m.summary == nil || m.summary.SessionID != "ui-test" {
		t.Errorf("summary = %+v", m.summary)
	}
}

func TestErrorMessageShowsErrorPhase(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(sessionStartedMsg{Err: errTest})
	m = next.(Model)
	if m.phase != phaseError {
		t.Errorf("phase = %d, want error", m.phase)
	}
	if m.errMsg == "" {
		t.Error("error message not captured")
	}
}
