package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/doctidy/pkg/config"
	"github.com/yaklabco/doctidy/pkg/pipeline"
)

// Options controls reporter behavior.
type Options struct {
	// Writer receives the report output. Defaults to stdout.
	Writer io.Writer

	// Format selects the output format. Defaults to text.
	Format config.OutputFormat

	// Mode is the pipeline mode the result came from; it decides whether
	// verdicts read as validation or formatting outcomes.
	Mode pipeline.Mode

	// Color is the color mode: "auto", "always", "never".
	Color string

	// ShowSummary appends a one-line run summary (text format only).
	ShowSummary bool
}

func (o Options) withDefaults() Options {
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
	if o.Format == "" {
		o.Format = config.FormatText
	}
	if o.Mode == "" {
		o.Mode = pipeline.ModeCheck
	}
	if o.Color == "" {
		o.Color = "auto"
	}
	return o
}
