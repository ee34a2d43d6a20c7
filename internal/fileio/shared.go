package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Четыре таблицы аудита загружаются одним и тем же путём: файл →
// строки-map'ы по заголовкам, парсер выбирается по расширению.
var parsers = map[string]func(io.Reader, int) ([]map[string]string, error){
	".csv":  readCSV,
	".xls":  readXLS,
	".xlsx": readXLSX,
}

// ReadAnyMaps — вернёт строки файла как срез map[заголовок]значение.
// headerRow — номер строки заголовков (1-based).
func ReadAnyMaps(r io.Reader, filename string, headerRow int) ([]map[string]string, error) {
	parse, ok := parsers[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
	return parse(r, headerRow)
}

// pickHeader — строка заголовков; пустым колонкам даём имя Column N,
// чтобы "хвостовые" ячейки выгрузки не потерялись.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps — строки после заголовка в map'ы; полностью пустые строки
// (частый артефакт экспорта) выбрасываются.
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	var out []map[string]string
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			m[h] = v
			if empty && strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}
