package mdtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/doctidy/pkg/mdtext"
)

func TestValidateTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]string
		sep     string
		wantOK  bool
		wantMsg string
	}{
		{
			name:    "consistent table",
			rows:    [][]string{{"Name", "Value"}, {"a", "1"}},
			sep:     "| --- | --- |",
			wantOK:  true,
			wantMsg: "Table looks valid",
		},
		{
			name:    "alignment variants accepted",
			rows:    [][]string{{"l", "r", "c"}, {"1", "2", "3"}},
			sep:     "| :--- | ---: | :---: |",
			wantOK:  true,
			wantMsg: "Table looks valid",
		},
		{
			name:    "long dash runs accepted",
			rows:    [][]string{{"a"}},
			sep:     "| ---------- |",
			wantOK:  true,
			wantMsg: "Table looks valid",
		},
		{
			name:    "no rows",
			rows:    nil,
			sep:     "| --- |",
			wantOK:  false,
			wantMsg: "Empty table",
		},
		{
			name:    "row with extra column",
			rows:    [][]string{{"a", "b"}, {"1", "2", "3"}},
			sep:     "| --- | --- |",
			wantOK:  false,
			wantMsg: "Row 2 has 3 columns; expected 2",
		},
		{
			name:    "row with missing column",
			rows:    [][]string{{"a", "b"}, {"1", "2"}, {"only"}},
			sep:     "| --- | --- |",
			wantOK:  false,
			wantMsg: "Row 3 has 1 columns; expected 2",
		},
		{
			name:    "separator column count mismatch",
			rows:    [][]string{{"a", "b"}},
			sep:     "| --- |",
			wantOK:  false,
			wantMsg: "Separator has 1 columns; expected 2",
		},
		{
			name:    "two-dash segment rejected",
			rows:    [][]string{{"a", "b"}},
			sep:     "| -- | --- |",
			wantOK:  false,
			wantMsg: "Separator segment '--' is not a valid alignment marker (--- or :---:)",
		},
		{
			name:    "non-dash segment rejected",
			rows:    [][]string{{"a"}},
			sep:     "| === |",
			wantOK:  false,
			wantMsg: "Separator segment '===' is not a valid alignment marker (--- or :---:)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ok, msg := mdtext.ValidateTable(tt.rows, tt.sep)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
