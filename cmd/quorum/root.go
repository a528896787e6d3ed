package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quorum",
	Short: "Multi-provider AI orchestration and consensus engine",
	Long: `Quorum dispatches structured tasks to capability-tagged AI providers,
runs independent providers concurrently, and reduces their responses
into a single combined or ranked result.

Core capabilities:
- Routes tasks to the best-suited provider by declared specialization
- Runs provider calls in parallel without one failure blocking others
- Drives a 4-phase pipeline (architecture, generation, review, integration)
- Computes confidence-weighted consensus across providers

Configure provider credentials via environment variables
(OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY, MISTRAL_API_KEY)
or the config file; missing credentials simply disable that provider.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
