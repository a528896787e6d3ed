package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"quorum/internal/config"
)

var configInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration and configured providers",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write a default config file if none exists")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configInit {
		if err := config.Save(config.Default()); err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
		fmt.Printf("Wrote default config to %s\n", config.GetUserConfigPath())
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("User config:  %s\n", config.GetUserConfigPath())
	fmt.Printf("Results DB:   %s\n", cfg.DBPath())
	fmt.Printf("Primary:      %s\n", cfg.Defaults.Primary)
	fmt.Printf("Call timeout: %s\n", cfg.Timeouts.Request)
	if cfg.SpecializationsFile != "" {
		fmt.Printf("Specializations override: %s\n", cfg.SpecializationsFile)
	}

	fmt.Println("\nCredentials:")
	creds := cfg.Credentials()
	for p := range creds {
		color.Green("  ✓ %s", p)
	}
	if len(creds) == 0 {
		color.Yellow("  none configured")
	}

	return nil
}
