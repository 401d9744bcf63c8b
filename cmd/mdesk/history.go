// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdesk/internal/history"
	"github.com/pdiddy/mdesk/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past conversions",
	Long: `History lists recorded conversion attempts, newest first, with their
outcome and output location.`,
	RunE: runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old history entries",
	RunE:  runHistoryPrune,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of entries to show")
	historyPruneCmd.Flags().Int("keep", 100, "number of entries to keep")

	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(loadConfig().DataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	recs, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	for _, rec := range recs {
		when := rec.StartedAt.Local().Format("2006-01-02 15:04")
		switch rec.Status {
		case types.PhaseSucceeded:
			fmt.Printf("%s  ok      %s -> %s (%s)\n", when, rec.InputPath, rec.OutputPath, rec.Duration.Round(10*time.Millisecond))
		default:
			fmt.Printf("%s  failed  %s (%s)\n", when, rec.InputPath, rec.Message)
		}
	}
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(loadConfig().DataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	keep, _ := cmd.Flags().GetInt("keep")
	removed, err := store.Prune(keep)
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d entries, kept the newest %d.\n", removed, keep)
	return nil
}
