package main

import (
	"github.com/spf13/cobra"

	"github.com/copydrive/copydrive/internal/api"
	"github.com/copydrive/copydrive/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "copydrive",
	Short: "System prompt generation service for copywriting assistants",
	Long: `CopyDrive compiles project identity, methodology, audience, and offer
context into deterministic prompts and synthesizes a final system prompt
with an LLM, falling back to a deterministic template when synthesis is
unavailable.

The service provides:
  - Descriptor catalogs for copy types, frameworks, objectives, styles,
    and emotional focus
  - A system prompt generation endpoint with context hashing
  - Best-effort persistence of generated prompts`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.copydrive/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "copydrive home directory (default: ~/.copydrive)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
