package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d\.\-]`)

// ParseFloatLoose парсит "1 234,50", "197 ,00", "2 345,6" (NBSP/NNBSP) и т.п.
// Ошибки разбора деградируют до 0 — экспорт из ERP бывает каким угодно.
func ParseFloatLoose(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	// убрать неразрывные/узкие пробелы и обычные пробелы
	repl := strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "", ",", ".")
	s = repl.Replace(s)
	// оставить только цифры, точку и минус (на случай мусора)
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}

// ParseFloatOr — как ParseFloatLoose, но с дефолтом при неудаче.
func ParseFloatOr(s string, def float64) float64 {
	if f, ok := ParseFloatLoose(s); ok {
		return f
	}
	return def
}
