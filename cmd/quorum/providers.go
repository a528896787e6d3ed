package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"quorum/internal/config"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List providers, their availability, and specializations",
	RunE:  runProviders,
}

func runProviders(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	manager, err := buildManager(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	available := make(map[string]bool)
	for _, p := range manager.Available() {
		available[p.String()] = true
	}

	reg := manager.Registry()
	for _, p := range reg.Providers() {
		spec := reg.SpecializationOf(p)

		if available[p.String()] {
			color.Green("✓ %s (configured)", p)
		} else {
			color.New(color.Faint).Printf("✗ %s (no credential)\n", p)
		}
		fmt.Printf("    strengths: %s\n", strings.Join(spec.Strengths, ", "))
		fmt.Printf("    use for:   %s\n", strings.Join(spec.UseFor, ", "))
	}

	fmt.Printf("\n%d of %d providers configured\n", len(available), len(reg.Providers()))
	return nil
}
