// Package cli provides the Cobra command structure for doctidy.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/doctidy/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root doctidy command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "doctidy",
		Short: "Validate and reformat JSON and Markdown documents",
		Long: `doctidy validates and reformats JSON and Markdown documents.

For JSON, it pretty-prints valid documents and applies best-effort repair
heuristics (comments, trailing commas, single quotes) to informal input
before giving up. For Markdown, it normalizes heading spacing and realigns
pipe-table columns, reporting structurally broken tables instead of
guessing at fixes.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
