package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Discover resolves opts.Paths into a deterministically sorted list of files.
// Directories are walked recursively, filtered by extension and exclude
// globs; explicitly named files are taken as-is unless excluded.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	extensions := opts.effectiveExtensions()
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if !excluded(absPath, workDir, excludes) {
				add(absPath)
			}
			continue
		}

		err = filepath.WalkDir(absPath, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if cErr := ctx.Err(); cErr != nil {
				return fmt.Errorf("discovery cancelled: %w", cErr)
			}
			if entry.IsDir() {
				if excluded(path, workDir, excludes) {
					return filepath.SkipDir
				}
				return nil
			}
			if !hasExtension(path, extensions) || excluded(path, workDir, excludes) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", inputPath, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	return filepath.Abs(workDir)
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// excluded matches path (relative to workDir, slash-separated) against the
// compiled exclude globs. Both the relative path and the base name are
// tried, so "vendor/**" and "*.gen.md" style patterns both work.
func excluded(path, workDir string, excludes []glob.Glob) bool {
	if len(excludes) == 0 {
		return false
	}

	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, g := range excludes {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
