package service

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"integrity-service/internal/audit/model"
)

const (
	// Поставщики с валютой UAH, у которых цена в "евро" подозрительно
	// велика: почти наверняка в систему попала сумма в гривнах.
	wrongCurrency     = "UAH"
	currencyThreshold = 50.0
	exchangeRateUAH   = 45.0
)

// CurrencyIssues — партии с незаконвертированной гривной, по убыванию завышения.
func CurrencyIssues(lots []model.StockLot, idx *Index) []model.CurrencyIssue {
	results := make([]model.CurrencyIssue, 0)
	for _, lot := range lots {
		currency := idx.CurrencyByVendor[lot.VendorNo]
		if currency != wrongCurrency || lot.UnitCost <= currencyThreshold {
			continue
		}
		likely := lot.UnitCost / exchangeRateUAH
		results = append(results, model.CurrencyIssue{
			ID:            lot.Lot,
			Lot:           lot.Lot,
			PartNo:        lot.PartNo,
			Desc:          model.Truncate(lot.Desc, 40),
			VendorNo:      lot.VendorNo,
			VendorName:    model.Truncate(lot.VendorName, 30),
			Currency:      currency,
			CurrentCost:   lot.UnitCost,
			LikelyCost:    round2(likely),
			Overstatement: round2(lot.UnitCost - likely),
			Qty:           lot.Qty,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Overstatement > results[j].Overstatement
	})
	return results
}

// TotalOverstatement — суммарное завышение по неисправленным записям.
func TotalOverstatement(issues []model.CurrencyIssue, resolved func(id string) bool) float64 {
	sum := 0.0
	for _, c := range issues {
		if resolved != nil && resolved(c.ID) {
			continue
		}
		sum += c.Overstatement * c.Qty
	}
	return sum
}

// Правила тест-классификатора: каждое срабатывает независимо, причины
// накапливаются — одна запись может быть и "demo", и с битым номером.
var testDataRules = []struct {
	reason string
	match  func(pn, descLower string) bool
}{
	{"Contains 'test'", func(pn, desc string) bool {
		return strings.Contains(desc, "test") && !strings.Contains(desc, "test data")
	}},
	{"Contains 'demo'", func(pn, desc string) bool {
		return strings.Contains(desc, "demo")
	}},
	{"Placeholder", func(pn, desc string) bool {
		return strings.HasPrefix(pn, "9999")
	}},
	{"Excel error", func(pn, desc string) bool {
		// артефакт экспоненциальной записи: номер детали прошёл
		// через ячейку-число
		return strings.Contains(pn, "E+")
	}},
}

// TestDataItems — записи каталога, похожие на тестовые/демонстрационные.
func TestDataItems(articles []model.Article, idx *Index) []model.TestDataItem {
	results := make([]model.TestDataItem, 0)
	for _, a := range articles {
		descLower := strings.ToLower(a.Desc)
		var reasons []string
		for _, rule := range testDataRules {
			if rule.match(a.PartNo, descLower) {
				reasons = append(reasons, rule.reason)
			}
		}
		if len(reasons) == 0 {
			continue
		}
		_, inBom := idx.BomParts[a.PartNo]
		inBomFlag, action := "N", "REVIEW"
		if inBom {
			inBomFlag = "Y"
		} else if a.Stock == 0 {
			// нигде не используется и остатка нет — можно удалять
			action = "DELETE"
		}
		results = append(results, model.TestDataItem{
			ID:     a.PartNo,
			PartNo: a.PartNo,
			Desc:   model.Truncate(a.Desc, 40),
			Stock:  a.Stock,
			Cost:   round2(a.Cost),
			InBom:  inBomFlag,
			Reason: strings.Join(reasons, ", "),
			Action: action,
		})
	}
	return results
}

// Временные/заглушечные номера деталей: TEMP-, TMP-, TEST-, DEMO-, XXX…
// и голый пятизначный номер.
var tempPartPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^TEMP[-_]`),
	regexp.MustCompile(`(?i)^TMP[-_]`),
	regexp.MustCompile(`(?i)^TEST[-_]`),
	regexp.MustCompile(`(?i)^DEMO[-_]`),
	regexp.MustCompile(`(?i)^XXX`),
	regexp.MustCompile(`^\d{5}$`),
}

const notInArticles = "NOT IN ARTICLES"

// ZeroStockItems — компоненты спецификаций с нулевым остатком.
// Порядок — по номеру детали, чтобы отчёт был воспроизводим.
func ZeroStockItems(idx *Index) []model.ZeroStockItem {
	results := make([]model.ZeroStockItem, 0)
	for _, pn := range idx.SortedBomParts() {
		if idx.StockByPart[pn] != 0 {
			continue
		}
		desc := notInArticles
		cost := 0.0
		procured := "Yes"
		article, known := idx.ArticleByPart[pn]
		if known {
			desc = model.Truncate(article.Desc, 45)
			cost = article.Cost
			procured = model.YesNo(article.Procured)
		}
		isTemp := false
		for _, p := range tempPartPatterns {
			if p.MatchString(pn) {
				isTemp = true
				break
			}
		}
		products := idx.ProductsByPart[pn]
		if len(products) > 3 {
			products = products[:3]
		}
		action := "PROCURE"
		if isTemp {
			action = "REPLACE PN"
		}
		results = append(results, model.ZeroStockItem{
			ID:       pn,
			PartNo:   pn,
			Desc:     desc,
			Stock:    0,
			Cost:     round2(cost),
			Procured: procured,
			Vendor:   model.Truncate(idx.LotVendorByPart[pn], 25),
			UsedIn:   strings.Join(products, ", "),
			IsTemp:   isTemp,
			Action:   action,
		})
	}
	return results
}

// OrphanItems — запас, не упомянутый ни одной спецификацией ни как
// компонент, ни как изделие. По убыванию замороженной стоимости.
func OrphanItems(articles []model.Article, idx *Index) []model.OrphanItem {
	results := make([]model.OrphanItem, 0)
	for _, a := range articles {
		if a.Stock <= 0 || idx.InAnyBom(a.PartNo) {
			continue
		}
		group := a.Group
		if group == "" {
			group = "Unknown"
		}
		results = append(results, model.OrphanItem{
			ID:       a.PartNo,
			PartNo:   a.PartNo,
			Desc:     model.Truncate(a.Desc, 45),
			Stock:    a.Stock,
			UnitCost: round2(a.Cost),
			Value:    round2(a.Stock * a.Cost),
			Group:    group,
			Procured: model.YesNo(a.Procured),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Value > results[j].Value
	})
	return results
}

// TotalOrphanValue — замороженная стоимость по неисправленным записям.
func TotalOrphanValue(items []model.OrphanItem, resolved func(id string) bool) float64 {
	sum := 0.0
	for _, o := range items {
		if resolved != nil && resolved(o.ID) {
			continue
		}
		sum += o.Value
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
