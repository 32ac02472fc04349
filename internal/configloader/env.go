package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/doctidy/pkg/config"
)

// Environment variable names recognized by doctidy.
const (
	envJobs   = "DOCTIDY_JOBS"
	envIgnore = "DOCTIDY_IGNORE"
)

// applyEnv overlays DOCTIDY_* environment variables onto cfg and returns
// warnings for values it could not use.
func applyEnv(cfg *config.Config) []string {
	var warnings []string

	if v := os.Getenv(envJobs); v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil || jobs < 0 {
			warnings = append(warnings, fmt.Sprintf("ignoring %s=%q: not a non-negative integer", envJobs, v))
		} else {
			cfg.Jobs = jobs
		}
	}

	if v := os.Getenv(envIgnore); v != "" {
		for _, pattern := range strings.Split(v, ",") {
			pattern = strings.TrimSpace(pattern)
			if pattern != "" {
				cfg.Ignore = append(cfg.Ignore, pattern)
			}
		}
	}

	return warnings
}
