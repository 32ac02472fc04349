package jsontext_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doctidy/pkg/jsontext"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid documents", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{
			`{}`,
			`[]`,
			`{"a": 1}`,
			`[1, 2, 3]`,
			`"just a string"`,
			`true`,
			"{\n  \"nested\": {\"deep\": [null]}\n}",
		} {
			assert.NoError(t, jsontext.Validate([]byte(text)), "input: %s", text)
		}
	})

	t.Run("reports position on a single line", func(t *testing.T) {
		t.Parallel()

		err := jsontext.Validate([]byte(`{"a":}`))
		require.Error(t, err)

		var decodeErr *jsontext.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, 1, decodeErr.Line)
		assert.Equal(t, 6, decodeErr.Column)
		assert.Contains(t, err.Error(), "JSONDecodeError:")
		assert.Contains(t, err.Error(), "(line 1 column 6)")
	})

	t.Run("reports position across lines", func(t *testing.T) {
		t.Parallel()

		err := jsontext.Validate([]byte("{\n  bad\n}"))
		require.Error(t, err)

		var decodeErr *jsontext.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, 2, decodeErr.Line)
		assert.Equal(t, 3, decodeErr.Column)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		err := jsontext.Validate(nil)
		require.Error(t, err)

		var decodeErr *jsontext.DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("pretty-prints with two-space indentation", func(t *testing.T) {
		t.Parallel()

		out, repaired, err := jsontext.Format([]byte(`{"b":1,"a":[1,2]}`))
		require.NoError(t, err)
		assert.False(t, repaired)
		assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}", string(out))
	})

	t.Run("preserves key order", func(t *testing.T) {
		t.Parallel()

		out, _, err := jsontext.Format([]byte(`{"zebra": 1, "alpha": 2, "mango": 3}`))
		require.NoError(t, err)

		text := string(out)
		assert.Less(t, strings.Index(text, "zebra"), strings.Index(text, "alpha"))
		assert.Less(t, strings.Index(text, "alpha"), strings.Index(text, "mango"))
	})

	t.Run("leaves non-ASCII text unescaped", func(t *testing.T) {
		t.Parallel()

		out, _, err := jsontext.Format([]byte(`{"name": "héllo", "emoji": "✨"}`))
		require.NoError(t, err)
		assert.Contains(t, string(out), "héllo")
		assert.Contains(t, string(out), "✨")
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		first, _, err := jsontext.Format([]byte(`{"a": {"b": [1, 2, {"c": null}]}, "d": "é"}`))
		require.NoError(t, err)

		second, repaired, err := jsontext.Format(first)
		require.NoError(t, err)
		assert.False(t, repaired)
		assert.Equal(t, string(first), string(second))
	})

	t.Run("repairs informal input once", func(t *testing.T) {
		t.Parallel()

		out, repaired, err := jsontext.Format([]byte(`{'a': 1,}`))
		require.NoError(t, err)
		assert.True(t, repaired)
		assert.Equal(t, "{\n  \"a\": 1\n}", string(out))
	})

	t.Run("returns the original parse error when repair fails", func(t *testing.T) {
		t.Parallel()

		out, repaired, err := jsontext.Format([]byte(`{"a": }`))
		require.Error(t, err)
		assert.Nil(t, out)
		assert.False(t, repaired)

		var decodeErr *jsontext.DecodeError
		assert.True(t, errors.As(err, &decodeErr))
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		out, _, err := jsontext.Format([]byte("  \n {\"a\": 1} \n\n"))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"a\": 1\n}", string(out))
	})
}
