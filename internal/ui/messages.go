package ui

import (
	"github.com/abhisek/skillscroll/internal/content"
	"github.com/abhisek/skillscroll/internal/feed"
)

// sessionStartedMsg is sent when the engine has issued the first card.
type sessionStartedMsg struct {
	Card *content.ScrollCard
	Err  error
}

// turnGradedMsg is sent when a grading transition completes.
type turnGradedMsg struct {
	Result *feed.TurnResult
	Err    error
}

// sessionEndedMsg is sent when the session summary is ready.
type sessionEndedMsg struct {
	Summary *feed.Summary
	Err     error
}
