package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"quorum/internal/config"
	"quorum/internal/state"
)

var (
	generateStack string
	generateSave  bool
	generateOut   string
)

var generateCmd = &cobra.Command{
	Use:   "generate <description>",
	Short: "Generate a project with collaborative multi-provider AI",
	Long: `Generate a project using the 4-phase collaboration pipeline:

  1. Architecture: the system-design specialist drafts the architecture
  2. Generation:   frontend, backend, database, and API tasks run in
                   parallel on the best-suited providers
  3. Review:       security, performance, and best-practice reviews
  4. Integration:  the primary provider merges code and review feedback

Works with any subset of configured providers; with a single provider
every phase runs on it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateStack, "stack", "Full-Stack", "Technology stack to target")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Persist the result to the local results database")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Write extracted files to this directory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	manager, err := buildManager(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	available := manager.Available()
	if len(available) == 0 {
		return fmt.Errorf("no providers configured; set at least one of OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY, MISTRAL_API_KEY")
	}

	fmt.Printf("Generating %q (%s) with %d provider(s)...\n", description, generateStack, len(available))

	result, err := manager.CollaborativeGenerate(cmd.Context(), description, generateStack)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Printf("\n✓ Collaboration %s complete\n\n", result.ID)

	fmt.Printf("  Repo name:       %s\n", result.RepoName)
	fmt.Printf("  Providers used:  %d (%s)\n", result.Summary.ProvidersUsed, strings.Join(result.Summary.ProviderNames, ", "))
	fmt.Printf("  Avg confidence:  %.2f\n", result.Summary.AverageConfidence)
	fmt.Printf("  Quality score:   %.2f\n", result.QualityScore)
	fmt.Printf("  Total tokens:    %d\n", result.Summary.TotalTokens)
	fmt.Printf("  Execution time:  %s\n", result.Summary.TotalExecutionTime)
	fmt.Printf("  Files extracted: %d\n", len(result.Files))

	for _, review := range result.Reviews {
		if review.Failed() {
			color.Yellow("  ⚠ %s review failed: %s", review.Provider, review.Err)
		}
	}

	if generateOut != "" {
		if err := writeFiles(generateOut, result.Files); err != nil {
			return err
		}
		fmt.Printf("\nWrote %d file(s) to %s\n", len(result.Files), generateOut)
	} else {
		fmt.Printf("\n%s\n", result.Code)
	}

	if generateSave {
		db, err := state.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("open results database: %w", err)
		}
		defer db.Close()

		if err := db.SaveResult(result); err != nil {
			return err
		}
		fmt.Printf("Saved result %s to %s\n", result.ID, db.Path())
	}

	return nil
}

// writeFiles writes extracted files under dir, creating subdirectories
// as needed. Paths are cleaned to keep generated names inside dir.
func writeFiles(dir string, files map[string]string) error {
	for name, content := range files {
		cleaned := filepath.Clean("/" + name)
		target := filepath.Join(dir, cleaned)

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("create directory for %s: %w", name, err)
		}
		if err := os.WriteFile(target, []byte(content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
