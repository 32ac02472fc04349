// Package reporter formats and writes run results.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/doctidy/pkg/config"
	"github.com/yaklabco/doctidy/pkg/runner"
)

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of failing files and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the configured output format.
func New(opts Options) (Reporter, error) {
	opts = opts.withDefaults()

	switch opts.Format {
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}
