package runner

import "github.com/yaklabco/doctidy/pkg/pipeline"

// FileOutcome wraps a pipeline result with path and error metadata.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Result is the pipeline result; nil if processing failed.
	Result *pipeline.FileResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesInvalid is the number of files with a failing verdict.
	FilesInvalid int

	// FilesRepaired is the number of files formatted only after repair.
	FilesRepaired int

	// FilesWritten is the number of files rewritten in place.
	FilesWritten int

	// FilesSkipped is the number of files skipped (unknown type or
	// concurrent modification).
	FilesSkipped int

	// FilesErrored is the number of files that hit I/O or internal errors.
	FilesErrored int
}

// Result is the overall runner result. Files are ordered by path regardless
// of worker completion order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any file was invalid or errored.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesInvalid > 0 || r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	res := outcome.Result
	if res.Skipped {
		r.Stats.FilesSkipped++
	}
	if !res.Valid {
		r.Stats.FilesInvalid++
	}
	if res.Repaired {
		r.Stats.FilesRepaired++
	}
	if res.Written {
		r.Stats.FilesWritten++
	}
}
