package punchsheet

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrimsHeadersAndSkipsBlankRows(t *testing.T) {
	raw, err := Build("Hoja1", []string{" SUBSISTEMA ", "Disciplina", "Categoria ", "Estado", "FechaCompromiso"}, [][]any{
		{"SS1", "Elec", "A.1", "Abierto", "2024-01-01"},
		{"", "", "", "", ""},
		{"SS2", "Piping"},
	})
	require.NoError(t, err)

	sheet, err := Parse(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "Hoja1", sheet.Name)
	assert.Equal(t, TemplateHeader, sheet.Headers)
	require.Len(t, sheet.Rows, 2)

	first := sheet.Rows[0]
	for col, want := range map[string]string{
		ColSubsystem: "SS1", ColDiscipline: "Elec", ColCategory: "A.1", ColStatus: "Abierto", ColDueDate: "2024-01-01",
	} {
		got, err := first.Get(col)
		require.NoError(t, err)
		assert.Equal(t, want, got, col)
	}

	short := sheet.Rows[1]
	status, err := short.Get(ColStatus)
	require.NoError(t, err)
	assert.Equal(t, "", status)
}

func TestRowGetMissingColumn(t *testing.T) {
	_, err := Row{ColSubsystem: "SS1"}.Get(ColDueDate)
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestParseReadsDateCellsAsSerials(t *testing.T) {
	due := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	raw, err := Build("", TemplateHeader, [][]any{{"SS1", "Elec", "A", "Abierto", due}})
	require.NoError(t, err)

	sheet, err := Parse(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)

	cell, err := sheet.Rows[0].Get(ColDueDate)
	require.NoError(t, err)
	got, ok := ParseDate(cell)
	require.True(t, ok, "cell %q", cell)
	assert.Equal(t, due, got)
}

func TestParseRejectsNonWorkbook(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}

func TestTemplateHasHeaderOnly(t *testing.T) {
	raw, err := Template()
	require.NoError(t, err)
	sheet, err := Parse(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, TemplateHeader, sheet.Headers)
	assert.Empty(t, sheet.Rows)
}
