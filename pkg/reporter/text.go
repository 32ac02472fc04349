package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/doctidy/internal/ui/pretty"
	"github.com/yaklabco/doctidy/pkg/doctype"
	"github.com/yaklabco/doctidy/pkg/pipeline"
	"github.com/yaklabco/doctidy/pkg/runner"
)

const (
	bufWriterSize = 32 * 1024

	// summaryDividerWidth caps the rule drawn above the summary line.
	summaryDividerWidth = 40
)

// TextReporter writes human-readable, optionally colored diagnostics in the
// classic "[OK] path: ..." / "[ERR] path: ..." shape.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to process."))
		}
		return 0, nil
	}

	var failures int
	for _, file := range result.Files {
		if !r.reportFile(file) {
			failures++
		}
	}

	if r.opts.ShowSummary {
		r.writeSummary(result.Stats)
	}
	return failures, nil
}

// reportFile writes one file's outcome and reports whether it passed.
func (r *TextReporter) reportFile(file runner.FileOutcome) bool {
	path := r.styles.FilePath.Render(file.Path)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s %s: %v\n", r.tag(false), path, file.Error)
		return false
	}

	res := file.Result
	if res == nil {
		return true
	}

	if res.Skipped {
		fmt.Fprintf(r.bw, "%s %s: skipped (%s)\n",
			r.styles.Info.Render("[SKIP]"), path, res.SkipReason)
		return res.Valid
	}

	if r.opts.Mode == pipeline.ModeFormat {
		r.reportFormat(path, res)
		return res.Valid
	}

	r.reportCheck(path, res)
	return res.Valid
}

func (r *TextReporter) reportCheck(path string, res *pipeline.FileResult) {
	if res.Type == doctype.TypeMarkdown {
		if res.Valid {
			fmt.Fprintf(r.bw, "%s No table structure issues found in %s\n", r.tag(true), path)
			return
		}
		fmt.Fprintf(r.bw, "%s %s: Markdown validation found issues:\n", r.tag(false), path)
		for _, line := range res.IssueStrings() {
			fmt.Fprintf(r.bw, "  - %s\n", line)
		}
		return
	}

	if res.Valid {
		fmt.Fprintf(r.bw, "%s %s: %s\n", r.tag(true), path, res.Message)
		return
	}

	fmt.Fprintf(r.bw, "%s %s: %s\n", r.tag(false), path, res.Message)
	if len(res.RepairPreview) > 0 {
		fmt.Fprintf(r.bw, "\n%s\n\n", r.styles.Dim.Render("[HINT] Suggested repaired JSON (preview):"))
		r.bw.Write(res.RepairPreview)
		fmt.Fprintln(r.bw)
	}
}

func (r *TextReporter) reportFormat(path string, res *pipeline.FileResult) {
	if !res.Valid {
		fmt.Fprintf(r.bw, "%s %s: Cannot format: %s\n", r.tag(false), path, res.Message)
		fmt.Fprintf(r.bw, "%s %s: Auto-repair failed; aborting format.\n", r.tag(false), path)
		return
	}

	switch {
	case res.Written:
		fmt.Fprintf(r.bw, "%s Formatted %s saved to %s\n", r.tag(true), typeLabel(res.Type), path)
	default:
		fmt.Fprintf(r.bw, "%s %s: already formatted\n", r.tag(true), path)
	}
}

func (r *TextReporter) tag(ok bool) string {
	if ok {
		return r.styles.OK.Render("[OK]")
	}
	return r.styles.Err.Render("[ERR]")
}

func (r *TextReporter) writeSummary(stats runner.Stats) {
	width := min(summaryDividerWidth, pretty.TerminalWidth(r.opts.Writer))
	fmt.Fprintln(r.bw, r.styles.Dim.Render(strings.Repeat("-", width)))

	summary := fmt.Sprintf("%d files processed, %d invalid, %d errored",
		stats.FilesProcessed, stats.FilesInvalid, stats.FilesErrored)
	if stats.FilesRepaired > 0 {
		summary += fmt.Sprintf(", %d auto-repaired", stats.FilesRepaired)
	}
	if stats.FilesWritten > 0 {
		summary += fmt.Sprintf(", %d written", stats.FilesWritten)
	}

	style := r.styles.Success
	if stats.FilesInvalid > 0 || stats.FilesErrored > 0 {
		style = r.styles.Failure
	}
	fmt.Fprintln(r.bw, style.Render(summary))
}

func typeLabel(t doctype.Type) string {
	switch t {
	case doctype.TypeJSON:
		return "JSON"
	case doctype.TypeMarkdown:
		return "Markdown"
	default:
		return "document"
	}
}
