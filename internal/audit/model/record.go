package model

import (
	"regexp"
	"strings"

	"integrity-service/internal/utils"
)

// Record — сырая строка импорта: map[заголовок]значение.
// Экспорт из ERP не даёт стабильных заголовков ("Part No." / "part_no" /
// "Component"), поэтому доступ к полям идёт через список синонимов.
type Record map[string]string

var rxHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey — нижний регистр, NBSP → пробел, служебные символы → пробел.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ", "ё", "е").Replace(s)
	s = rxHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolve ищет реальный ключ записи по желаемому имени.
// Поддерживает варианты через "|" (например: "Part No.|part_no|Component").
func (rec Record) resolve(want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	// точное совпадение (как есть)
	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	var nWantAll []string
	for _, a := range alts {
		nWantAll = append(nWantAll, normHeaderKey(a))
	}

	// нормализованное точное, затем частичное (want ⊂ key или key ⊂ want)
	bestKey := ""
	bestScore := 0
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range nWantAll {
			if nk == n {
				return k
			}
		}
		score := 0
		for _, n := range nWantAll {
			if n != "" && (strings.Contains(nk, n) || strings.Contains(n, nk)) {
				if len(n) > score {
					score = len(n)
				}
			}
		}
		// при равном счёте берём лексикографически меньший ключ — детерминизм
		if score > bestScore || (score == bestScore && score > 0 && k < bestKey) {
			bestScore, bestKey = score, k
		}
	}
	return bestKey
}

// Str — значение первого подходящего синонима, "" при полном промахе.
func (rec Record) Str(want string) string {
	k := rec.resolve(want)
	if k == "" {
		return ""
	}
	return strings.TrimSpace(rec[k])
}

// Num — числовое значение; мусор и пустота деградируют до def.
func (rec Record) Num(want string, def float64) float64 {
	return utils.ParseFloatOr(rec.Str(want), def)
}
