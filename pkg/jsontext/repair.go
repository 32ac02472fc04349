package jsontext

import (
	"bytes"
	"regexp"
	"strings"
)

// Repair heuristics, applied in a fixed order. These are text-level rewrites
// with no understanding of string context: a "//" inside a string literal is
// stripped as if it were a comment. That limitation is deliberate; repair is
// best-effort and the caller must re-validate the result.
var (
	reLineComment   = regexp.MustCompile(`//.*`)
	reBlockComment  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reTrailingComma = regexp.MustCompile(`,\s*([}\]])`)

	// A single-quoted span: non-greedy, honoring backslash escapes, never
	// crossing an unescaped quote boundary.
	reSingleQuoted = regexp.MustCompile(`'([^'\\]*(?:\\.[^'\\]*)*)'`)
)

// Repair rewrites common informal JSON into strict JSON:
//
//  1. Strip //-style line comments.
//  2. Strip /* ... */ block comments (multi-line, non-nested).
//  3. Remove trailing commas before } or ].
//  4. Convert single-quoted strings to double-quoted, escaping any embedded
//     double quotes.
//  5. Remove trailing commas again, in case step 4 exposed new ones.
//
// Repair never fails. If the rewrite strips the document down to whitespace,
// the original text is returned unchanged. Success is not guaranteed; only a
// strict re-parse can confirm the result.
func Repair(text []byte) []byte {
	original := text

	text = reLineComment.ReplaceAll(text, nil)
	text = reBlockComment.ReplaceAll(text, nil)
	text = reTrailingComma.ReplaceAll(text, []byte("$1"))
	text = reSingleQuoted.ReplaceAllFunc(text, requoteSpan)
	text = reTrailingComma.ReplaceAll(text, []byte("$1"))

	if len(bytes.TrimSpace(text)) == 0 {
		return original
	}
	return text
}

// requoteSpan rewrites one single-quoted span with double-quote delimiters.
func requoteSpan(span []byte) []byte {
	inner := string(span[1 : len(span)-1])
	inner = strings.ReplaceAll(inner, `"`, `\"`)
	return []byte(`"` + inner + `"`)
}
