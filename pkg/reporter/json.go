package reporter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/doctidy/pkg/runner"
)

// JSONReporter writes machine-readable results for CI consumption.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// jsonFile is the serialized form of one file outcome.
type jsonFile struct {
	Path     string   `json:"path"`
	Type     string   `json:"type,omitempty"`
	Valid    bool     `json:"valid"`
	Message  string   `json:"message,omitempty"`
	Issues   []string `json:"issues,omitempty"`
	Repaired bool     `json:"repaired,omitempty"`
	Written  bool     `json:"written,omitempty"`
	Skipped  bool     `json:"skipped,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// jsonReport is the top-level serialized result.
type jsonReport struct {
	Mode  string       `json:"mode"`
	Files []jsonFile   `json:"files"`
	Stats runner.Stats `json:"stats"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	report := jsonReport{Mode: string(r.opts.Mode)}
	var failures int

	if result != nil {
		report.Stats = result.Stats
		report.Files = make([]jsonFile, 0, len(result.Files))
		for _, file := range result.Files {
			jf := jsonFile{Path: file.Path}
			if file.Error != nil {
				jf.Error = file.Error.Error()
				failures++
			} else if res := file.Result; res != nil {
				jf.Type = string(res.Type)
				jf.Valid = res.Valid
				jf.Message = res.Message
				jf.Issues = res.IssueStrings()
				jf.Repaired = res.Repaired
				jf.Written = res.Written
				jf.Skipped = res.Skipped
				if !res.Valid {
					failures++
				}
			}
			report.Files = append(report.Files, jf)
		}
	}

	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return failures, fmt.Errorf("encode report: %w", err)
	}
	return failures, nil
}
