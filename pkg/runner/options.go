// Package runner provides multi-file orchestration over the pipeline.
package runner

import "github.com/yaklabco/doctidy/pkg/config"

// Options controls discovery and concurrency for a run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered during directory walks. Explicitly named files
	// bypass this filter.
	Extensions []string

	// ExcludeGlobs are glob patterns, relative to WorkingDir, used to
	// skip files or directories.
	ExcludeGlobs []string

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
