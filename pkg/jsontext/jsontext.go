// Package jsontext validates, repairs, and reformats JSON documents.
//
// The strict parser from encoding/json is the single source of truth for
// validity. This package never reimplements JSON parsing; it decides when to
// apply text-level repair heuristics before handing the document back to the
// parser, and how to pretty-print the result.
package jsontext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeError describes a JSON parse failure with a 1-based position.
type DecodeError struct {
	// Msg is the parser's native error text.
	Msg string

	// Line is the 1-based line of the failure point.
	Line int

	// Column is the 1-based column of the failure point.
	Column int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("JSONDecodeError: %s (line %d column %d)", e.Msg, e.Line, e.Column)
}

// Validate parses text with the strict parser. It returns nil for valid JSON
// and a *DecodeError otherwise. No repair is attempted here.
func Validate(text []byte) error {
	var v any
	err := json.Unmarshal(text, &v)
	if err == nil {
		return nil
	}

	offset := int64(len(text))
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}

	line, column := position(text, offset)
	return &DecodeError{
		Msg:    err.Error(),
		Line:   line,
		Column: column,
	}
}

// position converts a byte offset into a 1-based line and column. The parser
// reports the offset just past the offending byte, so the byte itself sits at
// offset-1.
func position(text []byte, offset int64) (line, column int) {
	pos := int(offset) - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}

	prefix := text[:pos]
	line = 1 + bytes.Count(prefix, []byte("\n"))

	lastNewline := bytes.LastIndexByte(prefix, '\n')
	column = pos - lastNewline
	if column < 1 {
		column = 1
	}
	return line, column
}

// Format pretty-prints text with two-space indentation, preserving key order
// and leaving non-ASCII characters unescaped.
//
// If the strict parse fails, exactly one repair attempt is made. The repaired
// boolean reports whether the returned output came from repaired text. If
// both parses fail, the original parse error is returned and no output is
// produced.
func Format(text []byte) (out []byte, repaired bool, err error) {
	if parseErr := Validate(text); parseErr != nil {
		fixed := Repair(text)
		if Validate(fixed) != nil {
			return nil, false, parseErr
		}
		text = fixed
		repaired = true
	}

	var buf bytes.Buffer
	// json.Indent copies tokens verbatim, so key order and non-ASCII text
	// survive unchanged. It is idempotent on its own output.
	if err := json.Indent(&buf, bytes.TrimSpace(text), "", "  "); err != nil {
		return nil, false, fmt.Errorf("indent: %w", err)
	}
	return buf.Bytes(), repaired, nil
}
