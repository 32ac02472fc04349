package mdtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/doctidy/pkg/mdtext"
)

func TestVerifyStructure(t *testing.T) {
	t.Parallel()

	t.Run("accepts formatter output", func(t *testing.T) {
		t.Parallel()

		original := "# Title\n\n| a | b |\n| --- | --- |\n| 1 | 2 |\n"
		formatted := mdtext.FormatDocument(original)
		assert.NoError(t, mdtext.VerifyStructure([]byte(original), []byte(formatted)))
	})

	t.Run("accepts newly created headings", func(t *testing.T) {
		t.Parallel()

		// "##Tight" is not a heading until normalization adds the space.
		original := []byte("##Tight\n")
		formatted := []byte("## Tight\n")
		assert.NoError(t, mdtext.VerifyStructure(original, formatted))
	})

	t.Run("rejects lost headings", func(t *testing.T) {
		t.Parallel()

		err := mdtext.VerifyStructure([]byte("# A\n\n# B\n"), []byte("# A\n"))
		assert.ErrorContains(t, err, "lost headings")
	})

	t.Run("rejects lost tables", func(t *testing.T) {
		t.Parallel()

		original := []byte("| a | b |\n| --- | --- |\n| 1 | 2 |\n")
		formatted := []byte("no table here\n")
		err := mdtext.VerifyStructure(original, formatted)
		assert.ErrorContains(t, err, "lost tables")
	})

	t.Run("identical input passes", func(t *testing.T) {
		t.Parallel()

		doc := []byte("# H\n\nprose\n")
		assert.NoError(t, mdtext.VerifyStructure(doc, doc))
	})
}
