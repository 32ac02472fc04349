package mdtext

import (
	"fmt"
	"strings"
)

// Issue reports one structurally broken table block. Line numbers are
// 1-based and inclusive.
type Issue struct {
	StartLine int
	EndLine   int
	Message   string
}

func (i Issue) String() string {
	return fmt.Sprintf("Table at lines %d-%d : %s", i.StartLine, i.EndLine, i.Message)
}

// ValidateDocument scans text for table blocks and returns an Issue for every
// block that fails validation. A nil result means no table defects; tables
// are never auto-repaired here.
func ValidateDocument(text string) []Issue {
	lines := strings.Split(text, "\n")

	var issues []Issue
	for blk := range Tables(lines) {
		rows, sep := ParseBlock(lines[blk.Start:blk.End])
		if ok, msg := ValidateTable(rows, sep); !ok {
			issues = append(issues, Issue{
				StartLine: blk.Start + 1,
				EndLine:   blk.End,
				Message:   msg,
			})
		}
	}
	return issues
}

// FormatDocument rewrites text in canonical form using two independent
// passes: heading normalization, then table realignment over the normalized
// lines. Valid table blocks are replaced wholesale by FormatTable output;
// invalid blocks pass through verbatim (formatting never repairs a broken
// table). The result ends with exactly one trailing newline.
func FormatDocument(text string) string {
	lines := strings.Split(text, "\n")
	lines = normalizeHeadingPass(lines)
	lines = reformatTablePass(lines)
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\r\n") + "\n"
}

// normalizeHeadingPass canonicalizes headings, isolates each heading with a
// following blank line, and trims trailing whitespace from body lines.
func normalizeHeadingPass(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i, raw := range lines {
		line := NormalizeHeading(raw)
		if isNormalizedHeading(line) {
			out = append(out, strings.TrimSpace(line))
			if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
				out = append(out, "")
			}
			continue
		}
		out = append(out, strings.TrimRight(line, " \t\r"))
	}
	return out
}

// reformatTablePass replaces each valid table block with its aligned form.
func reformatTablePass(lines []string) []string {
	out := make([]string, 0, len(lines))
	next := 0
	for blk := range Tables(lines) {
		out = append(out, lines[next:blk.Start]...)

		block := lines[blk.Start:blk.End]
		rows, sep := ParseBlock(block)
		if ok, _ := ValidateTable(rows, sep); ok {
			out = append(out, FormatTable(rows)...)
		} else {
			out = append(out, block...)
		}
		next = blk.End
	}
	out = append(out, lines[next:]...)
	return out
}
