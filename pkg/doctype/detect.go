// Package doctype decides whether a document should be handled as JSON or
// Markdown. The file extension is authoritative; for unknown extensions the
// go-enry classifier arbitrates on content.
package doctype

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Type identifies a supported document format.
type Type string

const (
	// TypeAuto defers the decision to Detect.
	TypeAuto Type = "auto"
	// TypeJSON selects the JSON validate/format path.
	TypeJSON Type = "json"
	// TypeMarkdown selects the Markdown validate/format path.
	TypeMarkdown Type = "markdown"
	// TypeUnknown means neither path applies.
	TypeUnknown Type = ""
)

// IsValid reports whether t is a recognized user-specifiable type.
func (t Type) IsValid() bool {
	switch t {
	case TypeAuto, TypeJSON, TypeMarkdown:
		return true
	default:
		return false
	}
}

// Detect returns the document type for the given path and content.
func Detect(path string, content []byte) Type {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return TypeJSON
	case ".md", ".markdown":
		return TypeMarkdown
	}
	return detectByContent(content)
}

// detectByContent classifies content without extension hints.
func detectByContent(content []byte) Type {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return TypeUnknown
	}

	// A document opening with a JSON container is JSON until proven
	// otherwise; the classifier confirms the ambiguous cases.
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return TypeJSON
	}

	candidates := []string{"JSON", "Markdown"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		switch lang {
		case "JSON":
			return TypeJSON
		case "Markdown":
			return TypeMarkdown
		}
	}
	return TypeUnknown
}
