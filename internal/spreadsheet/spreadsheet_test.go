package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buffer(t *testing.T, sheets ...Sheet) *bytes.Reader {
	t.Helper()
	f, err := BuildWorkbook(sheets...)
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestReadRowsKeysByHeader(t *testing.T) {
	r := buffer(t, Sheet{
		Name:    "Clientes",
		Headers: []string{"Nombre", "Teléfono"},
		Rows: [][]interface{}{
			{"Ana", "555-0100"},
			{"Luz"}, // missing trailing cell
		},
	})

	rows, err := ReadRows(r)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0]["Nombre"])
	assert.Equal(t, "555-0100", rows[0]["Teléfono"])
	assert.Equal(t, "Luz", rows[1]["Nombre"])
	_, ok := rows[1]["Teléfono"]
	assert.False(t, ok)
}

func TestReadRowsSkipsBlankRows(t *testing.T) {
	r := buffer(t, Sheet{
		Name:    "Hoja1",
		Headers: []string{"Nombre"},
		Rows:    [][]interface{}{{""}, {"Ana"}, {""}},
	})

	rows, err := ReadRows(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0]["Nombre"])
}

func TestReadRowsRejectsGarbage(t *testing.T) {
	_, err := ReadRows(strings.NewReader("not an xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no se pudo abrir")
}

func TestBuildWorkbookSkipsEmptySheetsAndOrdersTabs(t *testing.T) {
	f, err := BuildWorkbook(
		Sheet{Name: "Vacía", Headers: []string{"A"}},
		Sheet{Name: "Primera", Headers: []string{"A"}, Rows: [][]interface{}{{1}}},
		Sheet{Name: "Segunda", Headers: []string{"B"}, Rows: [][]interface{}{{2}}},
	)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{"Primera", "Segunda"}, sheets)
}
