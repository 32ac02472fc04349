package cli

import "github.com/yaklabco/doctidy/pkg/runner"

// Exit codes for doctidy.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssues indicates the run completed but found invalid documents.
	ExitIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code from a run result.
// Auto-repaired formats count as success; invalid documents and per-file
// errors both map to ExitIssues.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFailures() {
		return ExitIssues
	}
	return ExitSuccess
}
