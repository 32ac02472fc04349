package mdtext

import (
	"iter"
	"strings"
)

// Block is a half-open line range [Start, End) recognized as a pipe table:
// a header line, a separator line, then zero or more data rows. Indexes are
// 0-based; reporting adds 1 at the boundary.
type Block struct {
	Start int
	End   int
}

// Tables returns a lazy sequence of non-overlapping table blocks in lines,
// scanning forward. A candidate starts where a line contains '|' and the next
// line contains '|' plus a separator dash run; the block then extends over
// contiguous non-blank lines containing '|'. Scanning resumes at the end of
// each closed block, so ranges never overlap and every range spans at least
// the header and separator lines.
//
// The sequence is restartable: each range over it scans from the beginning.
func Tables(lines []string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		n := len(lines)
		i := 0
		for i < n-1 {
			if !strings.Contains(lines[i], "|") || !isSeparatorCandidate(lines[i+1]) {
				i++
				continue
			}

			end := i + 2
			for end < n && strings.Contains(lines[end], "|") && strings.TrimSpace(lines[end]) != "" {
				end++
			}

			if !yield(Block{Start: i, End: end}) {
				return
			}
			i = end
		}
	}
}

// isSeparatorCandidate reports whether line could be a table separator row:
// it contains a pipe and a run of at least three dashes. This is a loose
// containment check used only for block detection; ValidateTable applies the
// full per-segment alignment-marker syntax.
func isSeparatorCandidate(line string) bool {
	return strings.Contains(line, "|") && strings.Contains(line, "---")
}

// ParseBlock splits a table block into rows of trimmed cells plus the raw
// separator line. Row 0 is the header; the separator (source line 1) is
// returned separately and data rows follow from source line 2. Blocks shorter
// than two lines yield no rows.
func ParseBlock(block []string) (rows [][]string, sep string) {
	if len(block) < 2 {
		return nil, ""
	}

	rows = append(rows, SplitRow(block[0]))
	sep = strings.TrimSpace(block[1])
	for _, line := range block[2:] {
		rows = append(rows, SplitRow(line))
	}
	return rows, sep
}

// SplitRow splits one table line into trimmed cells: trim the line, strip one
// leading and one trailing '|' if present, split on '|', trim each piece.
// The same rule applies to data rows and the separator.
func SplitRow(line string) []string {
	s := strings.TrimSpace(line)
	if len(s) > 0 && s[0] == '|' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '|' {
		s = s[:len(s)-1]
	}

	parts := strings.Split(s, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
