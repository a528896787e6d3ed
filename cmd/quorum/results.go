package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quorum/internal/config"
	"quorum/internal/state"
)

var (
	resultsLimit int
	resultsShow  string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List or show saved collaboration results",
	RunE:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&resultsLimit, "limit", 10, "Maximum number of results to list")
	resultsCmd.Flags().StringVar(&resultsShow, "show", "", "Show the full code of a result by ID")
}

func runResults(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := state.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("open results database: %w", err)
	}
	defer db.Close()

	if resultsShow != "" {
		result, err := db.GetResult(resultsShow)
		if err != nil {
			return err
		}
		fmt.Printf("# %s: %s (%s)\n\n", result.ID, result.Description, result.TechStack)
		fmt.Println(result.Code)
		return nil
	}

	results, err := db.ListResults(resultsLimit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No saved results. Use 'quorum generate --save' to persist one.")
		return nil
	}

	for _, r := range results {
		fmt.Printf("%s  %-40s  stack=%-12s  quality=%.2f  providers=%d  %s\n",
			r.ID, truncate(r.Description, 40), r.TechStack, r.QualityScore,
			r.ProvidersUsed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
