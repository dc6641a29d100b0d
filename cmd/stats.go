package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/abhisek/skillscroll/internal/calibration"
	"github.com/abhisek/skillscroll/internal/concepts"
	"github.com/abhisek/skillscroll/internal/feed"
	"github.com/abhisek/skillscroll/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events := st.EventRepo()

		totalXP, err := events.TotalXP(ctx)
		if err != nil {
			return fmt.Errorf("query XP: %w", err)
		}
		fmt.Printf("Total XP: %d\n\n", totalXP)

		catalog := concepts.Default()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CONCEPT\tATTEMPTS\tACCURACY\tLAST PRACTICED")
		for _, id := range catalog.All() {
			acc, count, err := events.ConceptAccuracy(ctx, id)
			if err != nil {
				return fmt.Errorf("query accuracy for %s: %w", id, err)
			}
			if count == 0 {
				fmt.Fprintf(w, "%s\t0\t-\t-\n", id)
				continue
			}
			last, err := events.LatestAnswerTime(ctx, id)
			if err != nil {
				return fmt.Errorf("query last answer for %s: %w", id, err)
			}
			fmt.Fprintf(w, "%s\t%d\t%.0f%%\t%s\n", id, count, acc*100, last.Local().Format("2006-01-02 15:04"))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		snap, err := st.SnapshotRepo().LatestAny(ctx)
		if err != nil {
			return fmt.Errorf("query latest snapshot: %w", err)
		}
		if snap != nil {
			printSnapshot(snap)
		}
		return nil
	},
}

// printSnapshot reports the state of the most recent session: per-concept
// mastery, sequencer arm counters, and the calibration report.
func printSnapshot(snap *store.SnapshotEntry) {
	state, err := feed.FromMap(snap.Data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "latest snapshot unreadable:", err)
		return
	}

	fmt.Printf("\nLast session %s: turn %d, %d XP, best streak %d, %d queued for remediation\n",
		state.SessionID, state.Turn, state.XP, state.BestStreak, len(state.Queue))

	if len(state.Mastery) > 0 {
		ids := make([]string, 0, len(state.Mastery))
		for id := range state.Mastery {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "\nCONCEPT\tMASTERY\tATTEMPTS\tARM (s/f)")
		for _, id := range ids {
			ms := state.Mastery[id]
			armCol := "-"
			if arm := state.Arms[id]; arm != nil {
				armCol = fmt.Sprintf("%.0f/%.0f", arm.Successes, arm.Failures)
			}
			fmt.Fprintf(w, "%s\t%.0f%%\t%d\t%s\n", id, ms.PMastered*100, ms.Attempts, armCol)
		}
		w.Flush()
	}

	if report := calibration.Compute(state.History); report.Samples > 0 {
		fmt.Printf("\nCalibration over %d answers: %.2f ECE, %.2f Brier\n",
			report.Samples, report.CalibrationError, report.BrierScore)
	}
}
