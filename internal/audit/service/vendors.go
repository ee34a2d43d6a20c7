package service

import (
	"sort"
	"strings"

	"integrity-service/internal/audit/model"
)

const (
	vendorSimThreshold   = 0.80
	vendorExactThreshold = 0.95
	translitExact        = 0.98
	minNormalizedLen     = 5
	maxSharedRoots       = 3
)

type vendorData struct {
	num        string
	name       string
	currency   string
	normalized string
	rootForm   string
	roots      map[string]struct{}
	isCyrillic bool
}

// Официальная транслитерация и живое латинское написание расходятся в
// предсказуемых местах: Х → KH против CH/H, Г → H против G, И/Й → Y
// против I. Складываем оба написания к одной канонической форме перед
// сравнением — тот же приём, что склейка визуальных двойников A/А, P/Р.
// Порядок пар важен: длинные диграфы раньше коротких.
var translitFold = strings.NewReplacer(
	"SHCH", "SH",
	"ZH", "J",
	"KH", "H",
	"CH", "H",
	"YA", "IA",
	"YU", "IU",
	"YE", "IE",
	"YI", "I",
	"G", "H",
	"Y", "I",
)

// foldedRootForm — значимые корни без орг-форм и географии, склеенные в
// одну строку и приведённые к канонической форме написания. Второй шанс
// для пар, где "TOV"/"LLC" и разночтения диграфов топят прямой Левенштейн.
func foldedRootForm(roots map[string]struct{}) string {
	if len(roots) == 0 {
		return ""
	}
	keys := make([]string, 0, len(roots))
	for r := range roots {
		keys = append(keys, r)
	}
	sort.Strings(keys)
	return translitFold.Replace(strings.Join(keys, ""))
}

// DuplicateVendors — три упорядоченных прохода по парам поставщиков.
// Неупорядоченную пару забирает первый нашедший её проход, остальные
// её пропускают: одна пара — один кандидат на всю систему.
func DuplicateVendors(vendors []model.Vendor) model.VendorMatches {
	data := make([]vendorData, 0, len(vendors))
	for _, v := range vendors {
		roots := SignificantRoots(v.Name)
		data = append(data, vendorData{
			num:        v.Number,
			name:       v.Name,
			currency:   v.Currency,
			normalized: NormalizeForComparison(v.Name),
			rootForm:   foldedRootForm(roots),
			roots:      roots,
			isCyrillic: ContainsCyrillic(v.Name),
		})
	}

	claimed := make(map[string]struct{})
	out := model.VendorMatches{
		Translit: []model.TranslitPair{},
		Root:     []model.RootPair{},
		Similar:  []model.SimilarPair{},
	}

	// Проход 1: кириллический вариант против латинского.
	for _, cyr := range data {
		if !cyr.isCyrillic {
			continue
		}
		for _, lat := range data {
			if lat.isCyrillic {
				continue
			}
			// справочник не гарантирует уникальность номеров: пара из
			// повторов одной записи вырождается, пропускаем
			if cyr.num == lat.num {
				continue
			}
			pair := model.PairKey(cyr.num, lat.num)
			if _, done := claimed[pair]; done {
				continue
			}
			if len(cyr.normalized) < minNormalizedLen || len(lat.normalized) < minNormalizedLen {
				continue
			}

			sim := EditSimilarity(cyr.normalized, lat.normalized)
			if cyr.rootForm != "" && lat.rootForm != "" {
				if rs := EditSimilarity(cyr.rootForm, lat.rootForm); rs > sim {
					sim = rs
				}
			}
			matchType := "FUZZY"
			if strings.Contains(cyr.normalized, lat.normalized) || strings.Contains(lat.normalized, cyr.normalized) {
				shorter := min2(len(cyr.normalized), len(lat.normalized))
				longer := len(cyr.normalized) + len(lat.normalized) - shorter
				// короткое имя должно покрывать заметную часть длинного,
				// иначе "TOV" утонет в чём угодно
				if float64(shorter) >= float64(longer)*0.4 {
					if sim < 0.90 {
						sim = 0.90
					}
					matchType = "SUBSTRING"
				}
			}
			if sim < vendorSimThreshold {
				continue
			}
			claimed[pair] = struct{}{}
			if sim >= translitExact {
				matchType = "EXACT"
			}
			out.Translit = append(out.Translit, model.TranslitPair{
				ID:          pair,
				CyrNum:      cyr.num,
				CyrName:     model.Truncate(cyr.name, 40),
				CyrCurrency: cyr.currency,
				LatNum:      lat.num,
				LatName:     model.Truncate(lat.name, 40),
				LatCurrency: lat.currency,
				CyrNorm:     model.Truncate(cyr.normalized, 25),
				LatNorm:     model.Truncate(lat.normalized, 25),
				Similarity:  pct(sim),
				MatchType:   matchType,
				Action:      "MERGE",
			})
		}
	}

	// Проход 2: общий значимый корень. Score здесь не считается —
	// наличия корня достаточно, пара уходит на ручной разбор.
	for i := 0; i < len(data); i++ {
		for j := i + 1; j < len(data); j++ {
			v1, v2 := data[i], data[j]
			if v1.num == v2.num {
				continue
			}
			pair := model.PairKey(v1.num, v2.num)
			if _, done := claimed[pair]; done {
				continue
			}
			var shared []string
			for r := range v1.roots {
				if _, ok := v2.roots[r]; ok {
					shared = append(shared, r)
				}
			}
			if len(shared) == 0 {
				continue
			}
			claimed[pair] = struct{}{}
			sort.Strings(shared)
			if len(shared) > maxSharedRoots {
				shared = shared[:maxSharedRoots]
			}
			out.Root = append(out.Root, model.RootPair{
				ID:          pair,
				Num1:        v1.num,
				Name1:       model.Truncate(v1.name, 35),
				Currency1:   v1.currency,
				Num2:        v2.num,
				Name2:       model.Truncate(v2.name, 35),
				Currency2:   v2.currency,
				SharedRoots: strings.Join(shared, ", "),
				MatchType:   "ROOT",
				Action:      "REVIEW",
			})
		}
	}

	// Проход 3: обычный fuzzy по нормализованным полным именам.
	for i := 0; i < len(data); i++ {
		for j := i + 1; j < len(data); j++ {
			v1, v2 := data[i], data[j]
			if v1.num == v2.num {
				continue
			}
			pair := model.PairKey(v1.num, v2.num)
			if _, done := claimed[pair]; done {
				continue
			}
			sim := EditSimilarity(v1.normalized, v2.normalized)
			if sim < vendorSimThreshold {
				continue
			}
			claimed[pair] = struct{}{}
			matchType, action := "SIMILAR", "REVIEW"
			if sim >= vendorExactThreshold {
				matchType, action = "EXACT", "MERGE"
			}
			out.Similar = append(out.Similar, model.SimilarPair{
				ID:         pair,
				Num1:       v1.num,
				Name1:      model.Truncate(v1.name, 35),
				Currency1:  v1.currency,
				Num2:       v2.num,
				Name2:      model.Truncate(v2.name, 35),
				Currency2:  v2.currency,
				Similarity: pct(sim),
				MatchType:  matchType,
				Action:     action,
			})
		}
	}

	// Каждый список сортируется отдельно; между собой проходы не сливаются.
	sort.SliceStable(out.Translit, func(i, j int) bool {
		return out.Translit[i].Similarity > out.Translit[j].Similarity
	})
	sort.SliceStable(out.Similar, func(i, j int) bool {
		return out.Similar[i].Similarity > out.Similar[j].Similarity
	})
	return out
}
