// Package pipeline processes one document at a time: detect its type, run
// the matching validate or format path, and (optionally) write the result
// back safely. Malformed content is always a reported result here, never an
// error; errors are reserved for I/O and internal failures.
package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yaklabco/doctidy/internal/logging"
	"github.com/yaklabco/doctidy/pkg/config"
	"github.com/yaklabco/doctidy/pkg/doctype"
	"github.com/yaklabco/doctidy/pkg/fsutil"
	"github.com/yaklabco/doctidy/pkg/jsontext"
	"github.com/yaklabco/doctidy/pkg/mdtext"
)

// Mode selects the processing behavior.
type Mode string

const (
	// ModeCheck validates documents and reports diagnostics.
	ModeCheck Mode = "check"
	// ModeFormat rewrites documents in canonical form.
	ModeFormat Mode = "format"
)

// Pipeline processes documents according to a mode and configuration.
// A Pipeline is stateless across documents and safe for concurrent use.
type Pipeline struct {
	mode Mode
	cfg  *config.Config
}

// New creates a Pipeline for the given mode.
func New(mode Mode, cfg *config.Config) *Pipeline {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Pipeline{mode: mode, cfg: cfg}
}

// Mode returns the pipeline's processing mode.
func (p *Pipeline) Mode() Mode { return p.mode }

// ProcessFile reads path and processes its content. In format mode with the
// Write option set, the result is written back atomically unless the file
// changed underneath us.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*FileResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	result, err := p.Process(ctx, path, content)
	if err != nil {
		return nil, err
	}

	if p.mode == ModeFormat && p.cfg.Write && result.Output != nil {
		if err := p.writeBack(ctx, info, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Process runs the validate or format path over content. It never returns an
// error for malformed content; the verdict lands in the FileResult.
func (p *Pipeline) Process(ctx context.Context, path string, content []byte) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("process cancelled: %w", err)
	}

	kind := p.cfg.Type
	if kind == doctype.TypeAuto || kind == "" {
		kind = doctype.Detect(path, content)
	}

	result := &FileResult{Path: path, Type: kind}

	switch kind {
	case doctype.TypeJSON:
		p.processJSON(ctx, content, result)
	case doctype.TypeMarkdown:
		p.processMarkdown(ctx, content, result)
	default:
		result.Skipped = true
		result.SkipReason = "unrecognized document type"
		result.Valid = true
	}
	return result, nil
}

func (p *Pipeline) processJSON(ctx context.Context, content []byte, result *FileResult) {
	switch p.mode {
	case ModeCheck:
		err := jsontext.Validate(content)
		if err == nil {
			result.Valid = true
			result.Message = "Valid JSON"
			return
		}
		result.Message = err.Error()

		// Offer a preview when the repair heuristics would rescue the
		// document. Validation itself never rewrites anything.
		repaired := jsontext.Repair(content)
		if !bytes.Equal(repaired, content) {
			if pretty, _, err := jsontext.Format(repaired); err == nil {
				result.RepairPreview = pretty
			}
		}

	case ModeFormat:
		out, repaired, err := jsontext.Format(content)
		if err != nil {
			result.Message = err.Error()
			return
		}
		result.Valid = true
		result.Repaired = repaired
		result.Output = append(out, '\n')
		if repaired {
			logging.FromContext(ctx).Info("auto-repair succeeded; formatting repaired JSON",
				logging.FieldPath, result.Path)
		}
	}
}

func (p *Pipeline) processMarkdown(ctx context.Context, content []byte, result *FileResult) {
	switch p.mode {
	case ModeCheck:
		result.Issues = mdtext.ValidateDocument(string(content))
		result.Valid = len(result.Issues) == 0
		if result.Valid {
			result.Message = "No table structure issues found"
		}

	case ModeFormat:
		formatted := []byte(mdtext.FormatDocument(string(content)))
		if err := mdtext.VerifyStructure(content, formatted); err != nil {
			// The safety gate rejected the rewrite; keep the original.
			logging.FromContext(ctx).Warn("formatted output rejected, keeping original",
				logging.FieldPath, result.Path,
				logging.FieldError, err)
			formatted = content
		}
		result.Valid = true
		result.Output = formatted
	}
}

// writeBack persists result.Output over the source file, refusing to write
// when the file was modified externally since it was read.
func (p *Pipeline) writeBack(ctx context.Context, info *fsutil.FileInfo, result *FileResult) error {
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file changed during processing"
		return nil
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, info.Path, result.Output, info.Mode)
	if err != nil {
		return fmt.Errorf("write %s: %w", info.Path, err)
	}
	result.Written = written
	return nil
}
