package reporter_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doctidy/pkg/config"
	"github.com/yaklabco/doctidy/pkg/doctype"
	"github.com/yaklabco/doctidy/pkg/mdtext"
	"github.com/yaklabco/doctidy/pkg/pipeline"
	"github.com/yaklabco/doctidy/pkg/reporter"
	"github.com/yaklabco/doctidy/pkg/runner"
)

func textReporter(t *testing.T, buf *bytes.Buffer, mode pipeline.Mode, summary bool) reporter.Reporter {
	t.Helper()
	rep, err := reporter.New(reporter.Options{
		Writer:      buf,
		Format:      config.FormatText,
		Mode:        mode,
		Color:       "never",
		ShowSummary: summary,
	})
	require.NoError(t, err)
	return rep
}

func TestTextReporterCheck(t *testing.T) {
	t.Parallel()

	t.Run("valid json", func(t *testing.T) {
		t.Parallel()

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path: "a.json",
			Result: &pipeline.FileResult{
				Path: "a.json", Type: doctype.TypeJSON, Valid: true, Message: "Valid JSON",
			},
		}}}

		var buf bytes.Buffer
		failures, err := textReporter(t, &buf, pipeline.ModeCheck, false).Report(context.Background(), result)
		require.NoError(t, err)
		assert.Zero(t, failures)
		assert.Equal(t, "[OK] a.json: Valid JSON\n", buf.String())
	})

	t.Run("invalid json with repair preview", func(t *testing.T) {
		t.Parallel()

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path: "a.json",
			Result: &pipeline.FileResult{
				Path:          "a.json",
				Type:          doctype.TypeJSON,
				Message:       "JSONDecodeError: invalid character (line 1 column 2)",
				RepairPreview: []byte("{\n  \"a\": 1\n}"),
			},
		}}}

		var buf bytes.Buffer
		failures, err := textReporter(t, &buf, pipeline.ModeCheck, false).Report(context.Background(), result)
		require.NoError(t, err)
		assert.Equal(t, 1, failures)

		out := buf.String()
		assert.Contains(t, out, "[ERR] a.json: JSONDecodeError:")
		assert.Contains(t, out, "[HINT] Suggested repaired JSON (preview):")
		assert.Contains(t, out, "{\n  \"a\": 1\n}")
	})

	t.Run("clean markdown", func(t *testing.T) {
		t.Parallel()

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path: "doc.md",
			Result: &pipeline.FileResult{
				Path: "doc.md", Type: doctype.TypeMarkdown, Valid: true,
				Message: "No table structure issues found",
			},
		}}}

		var buf bytes.Buffer
		_, err := textReporter(t, &buf, pipeline.ModeCheck, false).Report(context.Background(), result)
		require.NoError(t, err)
		assert.Equal(t, "[OK] No table structure issues found in doc.md\n", buf.String())
	})

	t.Run("markdown with issues", func(t *testing.T) {
		t.Parallel()

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path: "doc.md",
			Result: &pipeline.FileResult{
				Path: "doc.md", Type: doctype.TypeMarkdown,
				Issues: []mdtext.Issue{
					{StartLine: 2, EndLine: 4, Message: "Row 2 has 3 columns; expected 2"},
				},
			},
		}}}

		var buf bytes.Buffer
		failures, err := textReporter(t, &buf, pipeline.ModeCheck, false).Report(context.Background(), result)
		require.NoError(t, err)
		assert.Equal(t, 1, failures)
		assert.Equal(t,
			"[ERR] doc.md: Markdown validation found issues:\n"+
				"  - Table at lines 2-4 : Row 2 has 3 columns; expected 2\n",
			buf.String())
	})

	t.Run("processing error", func(t *testing.T) {
		t.Parallel()

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path:  "gone.json",
			Error: errors.New("file not found"),
		}}}

		var buf bytes.Buffer
		failures, err := textReporter(t, &buf, pipeline.ModeCheck, false).Report(context.Background(), result)
		require.NoError(t, err)
		assert.Equal(t, 1, failures)
		assert.Contains(t, buf.String(), "[ERR] gone.json: file not found")
	})

	t.Run("skipped file", func(t *testing.T) {
		t.Parallel()

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path: "blob.bin",
			Result: &pipeline.FileResult{
				Path: "blob.bin", Valid: true,
				Skipped: true, SkipReason: "unrecognized document type",
			},
		}}}

		var buf bytes.Buffer
		failures, err := textReporter(t, &buf, pipeline.ModeCheck, false).Report(context.Background(), result)
		require.NoError(t, err)
		assert.Zero(t, failures)
		assert.Equal(t, "[SKIP] blob.bin: skipped (unrecognized document type)\n", buf.String())
	})

	t.Run("summary line", func(t *testing.T) {
		t.Parallel()

		result := &runner.Result{
			Files: []runner.FileOutcome{{
				Path: "a.json",
				Result: &pipeline.FileResult{
					Path: "a.json", Type: doctype.TypeJSON, Valid: true, Message: "Valid JSON",
				},
			}},
			Stats: runner.Stats{FilesProcessed: 1},
		}

		var buf bytes.Buffer
		_, err := textReporter(t, &buf, pipeline.ModeCheck, true).Report(context.Background(), result)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "----------------------------------------\n")
		assert.Contains(t, buf.String(), "1 files processed, 0 invalid, 0 errored")
	})

	t.Run("empty result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		failures, err := textReporter(t, &buf, pipeline.ModeCheck, true).Report(context.Background(), &runner.Result{})
		require.NoError(t, err)
		assert.Zero(t, failures)
		assert.Contains(t, buf.String(), "No files to process.")
	})
}

func TestTextReporterFormat(t *testing.T) {
	t.Parallel()

	t.Run("written file", func(t *testing.T) {
		t.Parallel()

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path: "a.json",
			Result: &pipeline.FileResult{
				Path: "a.json", Type: doctype.TypeJSON, Valid: true, Written: true,
			},
		}}}

		var buf bytes.Buffer
		_, err := textReporter(t, &buf, pipeline.ModeFormat, false).Report(context.Background(), result)
		require.NoError(t, err)
		assert.Equal(t, "[OK] Formatted JSON saved to a.json\n", buf.String())
	})

	t.Run("already formatted", func(t *testing.T) {
		t.Parallel()

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path: "doc.md",
			Result: &pipeline.FileResult{
				Path: "doc.md", Type: doctype.TypeMarkdown, Valid: true,
			},
		}}}

		var buf bytes.Buffer
		_, err := textReporter(t, &buf, pipeline.ModeFormat, false).Report(context.Background(), result)
		require.NoError(t, err)
		assert.Equal(t, "[OK] doc.md: already formatted\n", buf.String())
	})

	t.Run("unformattable file", func(t *testing.T) {
		t.Parallel()

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path: "a.json",
			Result: &pipeline.FileResult{
				Path: "a.json", Type: doctype.TypeJSON,
				Message: "JSONDecodeError: unexpected end of JSON input (line 1 column 1)",
			},
		}}}

		var buf bytes.Buffer
		failures, err := textReporter(t, &buf, pipeline.ModeFormat, false).Report(context.Background(), result)
		require.NoError(t, err)
		assert.Equal(t, 1, failures)

		out := buf.String()
		assert.Contains(t, out, "[ERR] a.json: Cannot format: JSONDecodeError:")
		assert.Contains(t, out, "Auto-repair failed; aborting format.")
	})
}
