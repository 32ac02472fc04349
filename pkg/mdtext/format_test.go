package mdtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/doctidy/pkg/mdtext"
)

func TestFormatTable(t *testing.T) {
	t.Parallel()

	t.Run("pads columns to the widest cell", func(t *testing.T) {
		t.Parallel()

		got := mdtext.FormatTable([][]string{
			{"Name", "Description"},
			{"x", "a longer cell"},
		})

		assert.Equal(t, []string{
			"| Name | Description   |",
			"| ---- | ------------- |",
			"| x    | a longer cell |",
		}, got)
	})

	t.Run("separator cells are at least three dashes", func(t *testing.T) {
		t.Parallel()

		got := mdtext.FormatTable([][]string{
			{"a", "bb"},
			{"1", "22"},
		})

		assert.Equal(t, []string{
			"| a | bb |",
			"| --- | --- |",
			"| 1 | 22 |",
		}, got)
	})

	t.Run("measures display width not byte length", func(t *testing.T) {
		t.Parallel()

		got := mdtext.FormatTable([][]string{
			{"col", "x"},
			{"日本", "y"},
		})

		assert.Equal(t, []string{
			"| col  | x |",
			"| ---- | --- |",
			"| 日本 | y |",
		}, got)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, mdtext.FormatTable(nil))
	})
}
