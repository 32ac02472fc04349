package pipeline

import (
	"github.com/yaklabco/doctidy/pkg/doctype"
	"github.com/yaklabco/doctidy/pkg/mdtext"
)

// FileResult is the outcome of processing a single document.
type FileResult struct {
	// Path is the file the result describes.
	Path string

	// Type is the document type the pipeline settled on.
	Type doctype.Type

	// Valid reports the overall verdict. In format mode a successful
	// rewrite counts as valid even when auto-repair was needed.
	Valid bool

	// Message is the single-line verdict for JSON documents, e.g.
	// "Valid JSON" or the decode error text.
	Message string

	// Issues lists structurally broken table blocks (Markdown check mode).
	Issues []mdtext.Issue

	// RepairPreview holds pretty-printed repaired JSON when validation
	// failed but the repair heuristics would rescue the document.
	RepairPreview []byte

	// Repaired reports that format mode succeeded only after repair.
	Repaired bool

	// Output is the formatted document (format mode only).
	Output []byte

	// Written reports that Output was persisted in place.
	Written bool

	// Skipped means the document was not processed; SkipReason says why.
	Skipped    bool
	SkipReason string
}

// IssueStrings renders the Markdown issues as report lines.
func (r *FileResult) IssueStrings() []string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		out[i] = issue.String()
	}
	return out
}
