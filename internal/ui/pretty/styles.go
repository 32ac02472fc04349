// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	// Verdict tags.
	OK   lipgloss.Style
	Err  lipgloss.Style
	Info lipgloss.Style

	// Diagnostic components.
	FilePath lipgloss.Style
	Message  lipgloss.Style
	Detail   lipgloss.Style

	// Summary.
	Success lipgloss.Style
	Failure lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles creates a Styles set for the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			OK:       plain,
			Err:      plain,
			Info:     plain,
			FilePath: plain,
			Message:  plain,
			Detail:   plain,
			Success:  plain,
			Failure:  plain,
			Dim:      plain,
		}
	}

	return &Styles{
		OK:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Err:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		FilePath: lipgloss.NewStyle().Bold(true),
		Message:  lipgloss.NewStyle(),
		Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Honor NO_COLOR (https://no-color.org/).
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// fallbackWidth is used when the writer is not a terminal.
const fallbackWidth = 80

// TerminalWidth returns the column width of the writer's terminal, or a
// conservative default when the writer is not a TTY.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
