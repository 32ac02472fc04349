// Package configloader resolves doctidy configuration from project files,
// environment variables, and CLI flags.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/doctidy/pkg/config"
)

// Project config file names, checked in order in each directory.
var configFileNames = []string{".doctidy.yaml", ".doctidy.yml"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped and a missing file is
	// an error rather than a fallback.
	ExplicitPath string

	// IgnoreEnv skips DOCTIDY_* environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags; it takes the
	// highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (DOCTIDY_*)
//  3. Project config file (.doctidy.yaml, discovered upward from WorkingDir)
//  4. Built-in defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	result := &LoadResult{Config: config.NewConfig()}

	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFile(path, result.Config); err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if !opts.IgnoreEnv {
		result.Warnings = append(result.Warnings, applyEnv(result.Config)...)
	}

	mergeCLI(result.Config, opts.CLIConfig)

	if err := result.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return result, nil
}

// resolveConfigPath returns the config file to load, or "" for none.
func resolveConfigPath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		return opts.ExplicitPath, nil
	}

	dir := opts.WorkingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}

	// Walk upward until a config file is found or the root is reached.
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func loadFile(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// mergeCLI overlays CLI-provided values onto cfg.
func mergeCLI(cfg, cli *config.Config) {
	if cli == nil {
		return
	}
	if len(cli.Ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, cli.Ignore...)
	}
	if cli.Jobs != 0 {
		cfg.Jobs = cli.Jobs
	}
	if cli.Type != "" {
		cfg.Type = cli.Type
	}
	if cli.Format != "" {
		cfg.Format = cli.Format
	}
	cfg.Write = cli.Write
	cfg.Out = cli.Out
}
