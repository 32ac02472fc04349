package mdtext

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minSeparatorDashes is the minimum dash count in a formatted separator cell.
const minSeparatorDashes = 3

// FormatTable re-emits a structurally valid table with columns padded to a
// shared width. Per-column width is the widest rendered cell (header
// included); separator cells use max(3, width) dashes. Row and column order
// are preserved and no cell content changes beyond padding.
func FormatTable(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	out := make([]string, 0, len(rows)+1)
	out = append(out, formatRow(rows[0], widths))

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", max(minSeparatorDashes, w))
	}
	out = append(out, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range rows[1:] {
		out = append(out, formatRow(row, widths))
	}
	return out
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		pad := 0
		if i < len(widths) {
			pad = widths[i] - runewidth.StringWidth(cell)
		}
		if pad < 0 {
			pad = 0
		}
		padded[i] = cell + strings.Repeat(" ", pad)
	}
	return "| " + strings.Join(padded, " | ") + " |"
}
