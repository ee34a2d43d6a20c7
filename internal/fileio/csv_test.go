package fileio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAnyMapsCSV(t *testing.T) {
	in := "Part No.,Part description,In stock\n" +
		"P1,Пластина сталева,10\n" +
		",,\n" + // полностью пустая строка выбрасывается
		"P2,Кронштейн,0\n"

	maps, err := ReadAnyMaps(strings.NewReader(in), "articles.csv", 1)
	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, "P1", maps[0]["Part No."])
	assert.Equal(t, "Пластина сталева", maps[0]["Part description"])
	assert.Equal(t, "0", maps[1]["In stock"])
}

func TestReadAnyMapsHeaderRow(t *testing.T) {
	// экспорт с мусорной преамбулой: заголовки на второй строке
	in := "Експорт від 2026-01-15,,\n" +
		"Part No.,Part description,\n" +
		"P1,Plate,extra\n"

	maps, err := ReadAnyMaps(strings.NewReader(in), "articles.csv", 2)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, "Plate", maps[0]["Part description"])
	// пустой заголовок получает имя по номеру колонки
	assert.Equal(t, "extra", maps[0]["Column 3"])
}

func TestReadAnyMapsUnsupported(t *testing.T) {
	_, err := ReadAnyMaps(strings.NewReader("x"), "report.pdf", 1)
	assert.ErrorContains(t, err, "unsupported file")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []string{"PN", "Desc"}, [][]string{
		{"P1", "Пластина, сталева"},
	})
	require.NoError(t, err)

	out := buf.String()
	// BOM для Excel
	assert.True(t, strings.HasPrefix(out, "\uFEFF"))
	assert.Contains(t, out, "PN,Desc\n")
	assert.Contains(t, out, `"Пластина, сталева"`)
}
