package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/doctidy/internal/configloader"
	"github.com/yaklabco/doctidy/internal/logging"
	"github.com/yaklabco/doctidy/pkg/config"
	"github.com/yaklabco/doctidy/pkg/doctype"
	"github.com/yaklabco/doctidy/pkg/pipeline"
	"github.com/yaklabco/doctidy/pkg/reporter"
	"github.com/yaklabco/doctidy/pkg/runner"
)

// ErrIssuesFound is returned when invalid documents are found. It carries no
// message for the user; it only signals the exit code.
var ErrIssuesFound = errors.New("validation issues found")

type checkFlags struct {
	format    string
	docType   string
	ignore    []string
	jobs      int
	noSummary bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate JSON and Markdown documents",
		Long: `Validate documents without modifying them.

JSON documents are parsed strictly and failures are reported with line and
column. When the repair heuristics would rescue an invalid document, a
repaired preview is shown. Markdown documents are scanned for pipe tables
with inconsistent column counts or malformed separator rows.

Examples:
  doctidy check                  # Check current directory
  doctidy check docs/ data.json  # Check a directory and a file
  doctidy check --type json f    # Force the JSON path
  doctidy check --format json    # Machine-readable output for CI`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringVar(&flags.docType, "type", "auto", "document type: auto, json, markdown")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the run summary line")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	cfg, workDir, err := loadConfig(cmd, &config.Config{
		Type:   doctype.Type(flags.docType),
		Format: config.OutputFormat(flags.format),
		Ignore: flags.ignore,
		Jobs:   flags.jobs,
	})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	result, err := runPipeline(ctx, pipeline.ModeCheck, cfg, args, workDir)
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      cfg.Format,
		Mode:        pipeline.ModeCheck,
		Color:       colorMode(cmd),
		ShowSummary: !flags.noSummary,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrIssuesFound
	}
	return nil
}

// loadConfig merges file, environment, and CLI configuration, returning the
// resolved config and the working directory.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

// runPipeline builds the pipeline and runner and processes the given paths.
func runPipeline(
	ctx context.Context,
	mode pipeline.Mode,
	cfg *config.Config,
	paths []string,
	workDir string,
) (*runner.Result, error) {
	logger := logging.Default()
	logger.Debug("starting run",
		logging.FieldPaths, paths,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldType, cfg.Type,
		logging.FieldFormat, cfg.Format,
		logging.FieldWrite, cfg.Write,
	)

	run := runner.New(pipeline.New(mode, cfg))
	result, err := run.Run(logging.WithLogger(ctx, logger), runner.Options{
		Paths:        paths,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	})
	if err != nil {
		return nil, errors.Join(errors.New("run failed"), err)
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesInvalid, result.Stats.FilesInvalid,
		logging.FieldFilesRepaired, result.Stats.FilesRepaired,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
	)
	return result, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "auto"
	}
	return mode
}
