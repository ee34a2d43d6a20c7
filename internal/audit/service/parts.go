package service

import (
	"sort"
	"strings"

	"integrity-service/internal/audit/model"
)

// Блокировка: группируем по первым 4 символам описания и сравниваем только
// внутри блока. Крепёж и зарезервированные префиксы исключаем целиком —
// тысячи "SCREW M3..." дали бы сплошные ложные пары.
var partExclusions = []string{
	"SCREW", "PIN", "WASHER", "NUT", "BOLT", "DIN", "ISO",
	"BEARING", "O-RING", "SPRING", "RIVET", "CONNECTOR", "TURRET_", "TRAILER_",
	"ГВИНТ", "БОЛТ", "ГАЙКА", "ШАЙБА",
}

const (
	partSimThreshold   = 0.90
	partMergeThreshold = 0.97
	// Блокировка ограничивает объём сравнения на практике, но не по
	// построению: держим явные пределы на блок и на выдачу.
	maxBlockSize   = 25
	maxPartMatches = 80
)

type blockedPart struct {
	pn    string
	desc  string
	stock float64
}

// DuplicateParts — кандидаты-дубли каталога, по убыванию похожести, не более 80.
func DuplicateParts(articles []model.Article, idx *Index) []model.PartMatch {
	groups := make(map[string][]blockedPart)
	var order []string

	for _, a := range articles {
		desc := a.Desc
		if len([]rune(desc)) < 4 {
			continue
		}
		descUpper := strings.ToUpper(desc)
		excluded := false
		for _, ex := range partExclusions {
			if strings.Contains(descUpper, ex) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		key := string([]rune(descUpper)[:4])
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], blockedPart{pn: a.PartNo, desc: desc, stock: idx.StockByPart[a.PartNo]})
	}

	results := make([]model.PartMatch, 0)
	seen := make(map[string]struct{})
	for _, key := range order {
		items := groups[key]
		if len(items) < 2 || len(items) > maxBlockSize {
			continue
		}
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				// каталог не гарантирует уникальность номеров: повтор той же
				// детали — не пара
				if items[i].pn == items[j].pn {
					continue
				}
				pair := model.PairKey(items[i].pn, items[j].pn)
				if _, dup := seen[pair]; dup {
					continue
				}
				sim := DescriptionSimilarity(items[i].desc, items[j].desc)
				if sim < partSimThreshold {
					continue
				}
				seen[pair] = struct{}{}
				_, in1 := idx.BomParts[items[i].pn]
				_, in2 := idx.BomParts[items[j].pn]
				action := "REVIEW"
				if sim >= partMergeThreshold {
					action = "MERGE"
				}
				results = append(results, model.PartMatch{
					ID:         pair,
					PN1:        items[i].pn,
					Desc1:      model.Truncate(items[i].desc, 50),
					Stock1:     items[i].stock,
					PN2:        items[j].pn,
					Desc2:      model.Truncate(items[j].desc, 50),
					Stock2:     items[j].stock,
					Similarity: pct(sim),
					InBom:      in1 || in2,
					Action:     action,
				})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > maxPartMatches {
		results = results[:maxPartMatches]
	}
	return results
}

// pct — похожесть в целых процентах, как в отчётах.
func pct(sim float64) int {
	return int(sim*100 + 0.5)
}
