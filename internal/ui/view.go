package ui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var body string
	switch m.phase {
	case phaseLoading:
		body = dimStyle.Render("\n  Loading your feed...")
	case phaseError:
		body = incorrectStyle.Render("\n  " + m.errMsg)
	case phaseSummary:
		body = m.renderSummary()
	case phaseFeedback:
		body = m.renderFeedback()
	default:
		body = m.renderCard()
	}

	frame := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
	v.SetContent(frame)
	return v
}

func (m Model) renderHeader() string {
	left := titleStyle.Render("  skillscroll")
	right := ""
	if m.lastResult != nil {
		right = dimStyle.Render(fmt.Sprintf("turn %d  ", m.lastResult.Turn)) +
			xpStyle.Render(fmt.Sprintf("XP %d", m.lastResult.TotalXP)) +
			dimStyle.Render(fmt.Sprintf("  streak %d  ", m.lastResult.Streak))
	}
	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) renderFooter() string {
	var hints string
	switch m.phase {
	case phaseAnswering, phaseConfidence:
		hints = "Enter submit · Esc end session · Ctrl+C quit"
	case phaseFeedback:
		hints = "any key next card · Esc end session"
	case phaseSummary, phaseError:
		hints = "any key exit"
	default:
		hints = "Ctrl+C quit"
	}
	return dimStyle.Render("  " + hints)
}

func (m Model) renderCard() string {
	if m.card == nil {
		return dimStyle.Render("\n  Waiting for a card...")
	}

	var b strings.Builder
	if m.remediation {
		b.WriteString(remediationStyle.Render("↻ one more try"))
		b.WriteString("\n\n")
	}
	b.WriteString(promptStyle.Render(m.card.Prompt))
	b.WriteString("\n")
	for i, opt := range m.card.Options {
		b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, opt))
	}
	b.WriteString("\n\n")

	switch m.phase {
	case phaseConfidence:
		b.WriteString(dimStyle.Render("How sure are you? (0-100)"))
		b.WriteString("\n")
		b.WriteString(m.confidenceInput.View())
	default:
		b.WriteString(m.answerInput.View())
	}

	return cardStyle.Width(min(m.width-4, 64)).Render(b.String())
}

func (m Model) renderFeedback() string {
	res := m.lastResult
	var b strings.Builder
	if res.Correct {
		b.WriteString(correctStyle.Render("Correct!"))
		b.WriteString("  ")
		b.WriteString(xpStyle.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
		if res.Multiplier > 1 {
			b.WriteString(xpStyle.Render(fmt.Sprintf(" (x%.1f streak)", res.Multiplier)))
		}
	} else {
		b.WriteString(incorrectStyle.Render("Not quite."))
		b.WriteString(dimStyle.Render("  It will come back around."))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("mastery %.0f%%", res.PMastered*100)))

	return cardStyle.Width(min(m.width-4, 64)).Render(b.String())
}

func (m Model) renderSummary() string {
	s := m.summary
	var b strings.Builder
	b.WriteString(titleStyle.Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Cards answered  %d (%d correct)\n", s.Turns, s.CorrectAnswers))
	b.WriteString(fmt.Sprintf("XP earned       %s\n", xpStyle.Render(fmt.Sprintf("%d", s.XP))))
	b.WriteString(fmt.Sprintf("Best streak     %d\n", s.BestStreak))
	b.WriteString(fmt.Sprintf("Time            %s\n", s.Duration.Round(time.Second)))
	if s.Calibration.Samples > 0 {
		b.WriteString(fmt.Sprintf("Calibration     %.2f ECE / %.2f Brier\n",
			s.Calibration.CalibrationError, s.Calibration.BrierScore))
	}
	if len(s.Overconfident) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Watch your confidence on: " + strings.Join(s.Overconfident, ", ")))
		b.WriteString("\n")
	}

	return cardStyle.Width(min(m.width-4, 64)).Render(b.String())
}
