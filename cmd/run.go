package cmd

import (
	"fmt"

	"github.com/abhisek/skillscroll/internal/app"
	"github.com/abhisek/skillscroll/internal/concepts"
	"github.com/abhisek/skillscroll/internal/content"
	"github.com/abhisek/skillscroll/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the collaborators, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := resolveBank(cmd)
	if err != nil {
		return err
	}

	sessionID, _ := cmd.Flags().GetString("session")

	return app.Run(app.Options{
		Config:       cfg,
		Catalog:      concepts.Default(),
		Provider:     provider,
		EventRepo:    st.EventRepo(),
		SnapshotRepo: st.SnapshotRepo(),
		SessionID:    sessionID,
	})
}

// resolveBank loads a card bank from --bank, falling back to the
// compiled-in seed bank.
func resolveBank(cmd *cobra.Command) (content.Provider, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return content.DefaultBank(), nil
	}
	bank, err := content.LoadBank(path)
	if err != nil {
		return nil, fmt.Errorf("load card bank: %w", err)
	}
	return bank, nil
}
