// Package mdtext validates and reformats a Markdown dialect covering ATX
// headings and GFM-style pipe tables. All other constructs pass through
// untouched.
//
// Detection works on raw line sequences with explicit character predicates
// rather than a Markdown AST, so formatting is byte-predictable: a line the
// scanner does not claim is never rewritten beyond trailing-space trimming.
package mdtext

import "strings"

// maxHeadingLevel is the deepest ATX heading recognized.
const maxHeadingLevel = 6

// NormalizeHeading canonicalizes ATX heading spacing: a line starting with
// one to six '#' characters becomes "<hashes> <trimmed text>", collapsing any
// gap (or absence of one) between the marker and the text. Lines with more
// than six leading '#' or none at all are returned unchanged.
func NormalizeHeading(line string) string {
	hashes := 0
	for hashes < len(line) && line[hashes] == '#' {
		hashes++
	}
	if hashes == 0 || hashes > maxHeadingLevel {
		return line
	}
	text := strings.TrimSpace(line[hashes:])
	return line[:hashes] + " " + text
}

// isNormalizedHeading reports whether line is a heading in canonical form:
// one to six '#' characters followed by a whitespace character.
func isNormalizedHeading(line string) bool {
	hashes := 0
	for hashes < len(line) && line[hashes] == '#' {
		hashes++
	}
	if hashes == 0 || hashes > maxHeadingLevel || hashes == len(line) {
		return false
	}
	c := line[hashes]
	return c == ' ' || c == '\t'
}
