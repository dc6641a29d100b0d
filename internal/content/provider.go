package content

import (
	"context"
	"fmt"
)

// Request asks a provider for a card near a target difficulty.
type Request struct {
	ConceptID  string
	Difficulty float64
	// Tolerance is the acceptable |card - target| difficulty distance.
	// 1.0 accepts any difficulty (the relaxed retry).
	Tolerance float64
}

// Provider is the content collaborator.
type Provider interface {
	// FetchCard returns a freshly issued card for the request, or an
	// *ErrNotFound if no card satisfies it.
	FetchCard(ctx context.Context, req Request) (*ScrollCard, error)
}

// ErrNotFound indicates no card satisfies the request.
type ErrNotFound struct {
	ConceptID  string
	Difficulty float64
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("no card for concept %q near difficulty %.2f", e.ConceptID, e.Difficulty)
}
