package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"quorum/internal/config"
	"quorum/internal/consensus"
)

var askContext []string

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask all configured providers and compute a consensus",
	Long: `Ask every configured provider the same question concurrently and
reduce the answers into a consensus score (the mean of the reported
confidences) and a recommendation.

Context can be attached as repeated key=value pairs:

  quorum ask "Which database fits a chat app?" --context scale=small --context stack=Go`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringArrayVar(&askContext, "context", nil, "Context entry as key=value (repeatable)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	questionContext := make(map[string]any)
	for _, kv := range askContext {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			return fmt.Errorf("invalid --context entry %q, expected key=value", kv)
		}
		questionContext[key] = value
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	manager, err := buildManager(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	result, err := manager.Consensus(cmd.Context(), question, questionContext)
	if err != nil && !errors.Is(err, consensus.ErrNoConsensusData) {
		return err
	}
	noScore := errors.Is(err, consensus.ErrNoConsensusData)

	for _, resp := range result.Responses {
		if resp.Failed() {
			color.Red("✗ %s: %s", resp.Provider, resp.Err)
			continue
		}
		color.Green("✓ %s (confidence %.2f)", resp.Provider, resp.Confidence)
		fmt.Printf("  %s\n", resp.Content)
		if resp.Reasoning != "" {
			fmt.Printf("  reasoning: %s\n", resp.Reasoning)
		}
	}

	fmt.Println()
	if noScore {
		color.Yellow("Consensus score unavailable: no response carried a confidence value")
	} else {
		fmt.Printf("Consensus score: %.2f\n", result.Score)
	}
	fmt.Printf("Recommendation:  %s\n", result.Recommendation)

	return nil
}
