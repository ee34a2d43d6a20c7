package fileio

import (
	"encoding/csv"
	"io"
)

// WriteCSV — пишет отчёт обратно в CSV: BOM + заголовки + строки.
// BOM нужен, чтобы Excel корректно открыл кириллицу в UTF-8.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
