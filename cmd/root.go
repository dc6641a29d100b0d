package cmd

import (
	"github.com/abhisek/skillscroll/internal/config"
	"github.com/abhisek/skillscroll/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillscroll",
	Short: "Adaptive learning feed for the terminal",
	Long:  "Skillscroll — an infinite-scroll practice feed that tracks mastery, calibrates confidence, and picks every next card for you.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLSCROLL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (overrides SKILLSCROLL_CONFIG env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a JSON card bank (defaults to the built-in bank)")
	rootCmd.PersistentFlags().String("session", "", "Session ID to resume")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLSCROLL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveConfig loads the TOML config from --config, then the default
// search path. A missing file yields the compiled-in defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p)
	}
	return config.Load(config.DefaultPath())
}
