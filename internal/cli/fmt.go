package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/doctidy/internal/logging"
	"github.com/yaklabco/doctidy/pkg/config"
	"github.com/yaklabco/doctidy/pkg/doctype"
	"github.com/yaklabco/doctidy/pkg/fsutil"
	"github.com/yaklabco/doctidy/pkg/pipeline"
	"github.com/yaklabco/doctidy/pkg/reporter"
)

type fmtFlags struct {
	format    string
	docType   string
	ignore    []string
	jobs      int
	write     bool
	out       string
	noSummary bool
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Reformat JSON and Markdown documents",
		Long: `Rewrite documents in canonical form.

JSON is pretty-printed with two-space indentation, preserving key order and
non-ASCII text. Invalid JSON gets exactly one repair attempt before the
format is aborted. Markdown headings are normalized and valid pipe tables
are realigned; structurally broken tables pass through untouched.

By default the formatted document is printed to stdout (single file only).

Examples:
  doctidy fmt data.json              # Print formatted JSON
  doctidy fmt --write docs/          # Rewrite files in place
  doctidy fmt --out tidy.md notes.md # Write result to a new file`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().StringVar(&flags.out, "out", "", "output path (single input only)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format for --write reports: text, json")
	cmd.Flags().StringVar(&flags.docType, "type", "auto", "document type: auto, json, markdown")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the run summary line")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	cfg, workDir, err := loadConfig(cmd, &config.Config{
		Type:   doctype.Type(flags.docType),
		Format: config.OutputFormat(flags.format),
		Ignore: flags.ignore,
		Jobs:   flags.jobs,
		Write:  flags.write,
		Out:    flags.out,
	})
	if err != nil {
		return err
	}

	if !cfg.Write {
		// Without --write the result goes to a single destination, so
		// exactly one input makes sense.
		if len(args) != 1 {
			return fmt.Errorf("exactly one input file is required without --write, got %d", len(args))
		}
		return fmtSingle(cmd, args[0], cfg)
	}

	ctx := commandContext(cmd)
	result, err := runPipeline(ctx, pipeline.ModeFormat, cfg, args, workDir)
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      cfg.Format,
		Mode:        pipeline.ModeFormat,
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

// fmtSingle formats one document and writes it to --out or stdout.
func fmtSingle(cmd *cobra.Command, path string, cfg *config.Config) error {
	ctx := commandContext(cmd)

	p := pipeline.New(pipeline.ModeFormat, cfg)
	res, err := p.ProcessFile(ctx, path)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	if res.Skipped {
		fmt.Fprintf(errOut, "[ERR] %s: %s\n", path, res.SkipReason)
		return ErrIssuesFound
	}
	if !res.Valid {
		fmt.Fprintf(errOut, "[ERR] Cannot format: %s\n", res.Message)
		fmt.Fprintln(errOut, "[ERR] Auto-repair failed; aborting format.")
		return ErrIssuesFound
	}

	if cfg.Out != "" {
		if err := fsutil.WriteAtomic(ctx, cfg.Out, res.Output, 0); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Out, err)
		}
		logging.Default().Debug("wrote formatted document",
			logging.FieldPath, path,
			logging.FieldOutput, cfg.Out)
		fmt.Fprintf(cmd.OutOrStdout(), "[OK] Formatted %s saved to %s\n", fmtTypeLabel(res.Type), cfg.Out)
		return nil
	}

	if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func fmtTypeLabel(t doctype.Type) string {
	switch t {
	case doctype.TypeJSON:
		return "JSON"
	case doctype.TypeMarkdown:
		return "Markdown"
	default:
		return "document"
	}
}
