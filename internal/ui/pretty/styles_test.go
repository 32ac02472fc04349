package pretty_test

import (
	"bytes"
	"testing"

	"github.com/yaklabco/doctidy/internal/ui/pretty"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	t.Run("plain styles render text unchanged", func(t *testing.T) {
		t.Parallel()

		styles := pretty.NewStyles(false)
		if got := styles.OK.Render("[OK]"); got != "[OK]" {
			t.Errorf("Render() = %q, want %q", got, "[OK]")
		}
		if got := styles.Err.Render("[ERR]"); got != "[ERR]" {
			t.Errorf("Render() = %q, want %q", got, "[ERR]")
		}
	})

	t.Run("colored styles are constructed", func(t *testing.T) {
		t.Parallel()

		styles := pretty.NewStyles(true)
		if styles == nil {
			t.Fatal("NewStyles returned nil")
		}
	})
}

func TestIsColorEnabled(t *testing.T) {
	t.Run("always", func(t *testing.T) {
		if !pretty.IsColorEnabled("always", &bytes.Buffer{}) {
			t.Error("always mode should enable color")
		}
	})

	t.Run("never", func(t *testing.T) {
		if pretty.IsColorEnabled("never", &bytes.Buffer{}) {
			t.Error("never mode should disable color")
		}
	})

	t.Run("auto with non-tty writer", func(t *testing.T) {
		if pretty.IsColorEnabled("auto", &bytes.Buffer{}) {
			t.Error("auto mode should disable color for non-file writers")
		}
	})

	t.Run("auto honors NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		if pretty.IsColorEnabled("auto", &bytes.Buffer{}) {
			t.Error("NO_COLOR should disable color")
		}
	})
}

func TestTerminalWidth(t *testing.T) {
	t.Parallel()

	if got := pretty.TerminalWidth(&bytes.Buffer{}); got != 80 {
		t.Errorf("TerminalWidth() = %d, want fallback 80", got)
	}
}
