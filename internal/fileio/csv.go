package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// detectCharset — угадывает кодировку по первым байтам выгрузки.
// Таблицы из ERP приходят либо в UTF-8, либо в windows-1251.
func detectCharset(br *bufio.Reader) string {
	peek, _ := br.Peek(2048)
	if len(peek) == 0 {
		return "utf-8"
	}
	det, err := chardet.NewTextDetector().DetectBest(peek)
	if err != nil || det == nil {
		return "utf-8"
	}
	return strings.ToLower(det.Charset)
}

// readCSV — CSV-таблица в строки-map'ы, headerRow 1-based.
// cp1251 перекодируется в UTF-8 на лету, остальное читаем как есть.
func readCSV(r io.Reader, headerRow int) ([]map[string]string, error) {
	br := bufio.NewReader(r)

	var dec io.Reader = br
	switch detectCharset(br) {
	case "windows-1251", "cp1251":
		dec = transform.NewReader(br, charmap.Windows1251.NewDecoder())
	default:
		// считаем UTF-8
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1 // ширина строк в выгрузках гуляет

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rowsToMaps(rows, pickHeader(rows, headerRow), headerRow), nil
}
