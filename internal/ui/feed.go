package ui

import (
	"context"
	"strconv"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillscroll/internal/content"
	"github.com/abhisek/skillscroll/internal/feed"
)

// phase is the UI position within a feed turn.
type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseConfidence
	phaseFeedback
	phaseSummary
	phaseError
)

// Model is the root Bubble Tea model: a single scrolling feed of cards
// driven by the feed engine.
type Model struct {
	engine    *feed.Engine
	sessionID string

	phase       phase
	card        *content.ScrollCard
	remediation bool
	shownAt     time.Time
	answer      string

	answerInput     textinput.Model
	confidenceInput textinput.Model

	lastResult *feed.TurnResult
	summary    *feed.Summary
	errMsg     string

	width  int
	height int
}

// NewModel creates the feed UI over an engine and session.
func NewModel(engine *feed.Engine, sessionID string) Model {
	answer := textinput.New()
	answer.Placeholder = "Type your answer..."
	answer.CharLimit = 40
	answer.Focus()

	confidence := textinput.New()
	confidence.Placeholder = "0-100"
	confidence.CharLimit = 3

	return Model{
		engine:          engine,
		sessionID:       sessionID,
		phase:           phaseLoading,
		answerInput:     answer,
		confidenceInput: confidence,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startSession(), m.answerInput.Focus())
}

func (m Model) startSession() tea.Cmd {
	return func() tea.Msg {
		card, err := m.engine.StartSession(context.Background(), m.sessionID)
		return sessionStartedMsg{Card: card, Err: err}
	}
}

func (m Model) gradeCmd(resp feed.Response) tea.Cmd {
	return func() tea.Msg {
		res, err := m.engine.GradeAndAdvance(context.Background(), m.sessionID, resp)
		return turnGradedMsg{Result: res, Err: err}
	}
}

func (m Model) endSession() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.engine.EndSession(context.Background(), m.sessionID)
		return sessionEndedMsg{Summary: summary, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionStartedMsg:
		if msg.Err != nil {
			m.phase = phaseError
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.card = msg.Card
		m.remediation = false
		m.shownAt = time.Now()
		m.phase = phaseAnswering
		return m, nil

	case turnGradedMsg:
		if msg.Err != nil {
			m.phase = phaseError
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.lastResult = msg.Result
		m.phase = phaseFeedback
		return m, nil

	case sessionEndedMsg:
		if msg.Err != nil {
			m.phase = phaseError
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.summary = msg.Summary
		m.phase = phaseSummary
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		switch m.phase {
		case phaseAnswering, phaseConfidence, phaseFeedback:
			m.phase = phaseLoading
			return m, m.endSession()
		case phaseSummary, phaseError:
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.phase {
	case phaseAnswering:
		if msg.String() == "enter" {
			m.answer = m.answerInput.Value()
			m.confidenceInput.SetValue("")
			m.phase = phaseConfidence
			return m, m.confidenceInput.Focus()
		}

	case phaseConfidence:
		if msg.String() == "enter" {
			confidence, err := strconv.ParseFloat(m.confidenceInput.Value(), 64)
			if err != nil || confidence < 0 || confidence > 100 {
				return m, nil
			}
			resp := feed.Response{
				CardID:           m.card.ID,
				Answer:           m.answer,
				StatedConfidence: confidence,
				LatencyMs:        time.Since(m.shownAt).Milliseconds(),
			}
			m.phase = phaseLoading
			return m, m.gradeCmd(resp)
		}
		// Confidence is a whole number.
		key := msg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return m, nil
		}

	case phaseFeedback:
		// Any key scrolls to the next card.
		m.card = m.lastResult.NextCard
		m.remediation = m.lastResult.Remediation
		m.shownAt = time.Now()
		m.answerInput.SetValue("")
		m.phase = phaseAnswering
		return m, m.answerInput.Focus()

	case phaseSummary, phaseError:
		return m, tea.Quit
	}

	return m.forwardToInput(msg)
}

func (m Model) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.phase {
	case phaseAnswering:
		m.answerInput, cmd = m.answerInput.Update(msg)
	case phaseConfidence:
		m.confidenceInput, cmd = m.confidenceInput.Update(msg)
	}
	return m, cmd
}
