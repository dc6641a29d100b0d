// Package app wires the decision core into the terminal feed program.
package app

import (
	"fmt"
	"math/rand"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/skillscroll/internal/concepts"
	"github.com/abhisek/skillscroll/internal/config"
	"github.com/abhisek/skillscroll/internal/content"
	"github.com/abhisek/skillscroll/internal/feed"
	"github.com/abhisek/skillscroll/internal/store"
	"github.com/abhisek/skillscroll/internal/ui"
)

// Options carries the collaborators for a feed run.
type Options struct {
	Config   config.Config
	Catalog  *concepts.Catalog
	Provider content.Provider

	// EventRepo and SnapshotRepo may be nil; the session then runs
	// without persistence.
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo

	// SessionID resumes an existing session when set; empty starts new.
	SessionID string

	// Rng seeds the engine's random decisions. Nil uses a time seed.
	Rng *rand.Rand
}

// Run starts the Bubble Tea program over a fresh engine.
func Run(opts Options) error {
	if opts.Catalog == nil {
		opts.Catalog = concepts.Default()
	}
	if opts.Provider == nil {
		opts.Provider = content.DefaultBank()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.New().String()
	}

	engine, err := feed.NewEngine(opts.Config, opts.Catalog, opts.Provider, opts.SnapshotRepo, opts.EventRepo, opts.Rng)
	if err != nil {
		return fmt.Errorf("build feed engine: %w", err)
	}

	p := tea.NewProgram(ui.NewModel(engine, opts.SessionID))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
