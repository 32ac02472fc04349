package mdtext

import "fmt"

// ValidateTable checks the single structural invariant of a parsed table:
// every row has the header's cell count, and the separator has a matching
// number of syntactically valid alignment markers. It returns a verdict and
// a human-readable message naming the first defect found.
func ValidateTable(rows [][]string, sepLine string) (bool, string) {
	if len(rows) == 0 {
		return false, "Empty table"
	}

	ncols := len(rows[0])
	for idx, row := range rows {
		if len(row) != ncols {
			return false, fmt.Sprintf("Row %d has %d columns; expected %d", idx+1, len(row), ncols)
		}
	}

	segments := SplitRow(sepLine)
	if len(segments) != ncols {
		return false, fmt.Sprintf("Separator has %d columns; expected %d", len(segments), ncols)
	}
	for _, seg := range segments {
		if !isAlignmentMarker(seg) {
			return false, fmt.Sprintf("Separator segment '%s' is not a valid alignment marker (--- or :---:)", seg)
		}
	}

	return true, "Table looks valid"
}

// isAlignmentMarker reports whether s is an optional ':', three or more '-',
// then an optional ':', with nothing else.
func isAlignmentMarker(s string) bool {
	if len(s) > 0 && s[0] == ':' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == ':' {
		s = s[:len(s)-1]
	}
	if len(s) < 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			return false
		}
	}
	return true
}
