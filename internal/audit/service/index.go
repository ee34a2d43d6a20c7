package service

import (
	"sort"

	"integrity-service/internal/audit/model"
)

// Index — перекрёстные ссылки между четырьмя таблицами. Строится целиком
// при каждой замене любой таблицы; частичных обновлений нет.
type Index struct {
	StockByPart      map[string]float64        // Part No. → остаток
	CurrencyByVendor map[string]string         // Vendor number → валюта
	BomParts         map[string]struct{}       // компоненты спецификаций
	BomProducts      map[string]struct{}       // изделия спецификаций
	ArticleByPart    map[string]model.Article  // первая запись каталога по номеру
	ProductsByPart   map[string][]string       // деталь → изделия (уникальные, по порядку строк)
	LotVendorByPart  map[string]string         // деталь → имя поставщика из первой партии
}

func BuildIndex(articles []model.Article, vendors []model.Vendor, lots []model.StockLot, boms []model.BomLine) *Index {
	idx := &Index{
		StockByPart:      make(map[string]float64, len(articles)),
		CurrencyByVendor: make(map[string]string, len(vendors)),
		BomParts:         make(map[string]struct{}),
		BomProducts:      make(map[string]struct{}),
		ArticleByPart:    make(map[string]model.Article, len(articles)),
		ProductsByPart:   make(map[string][]string),
		LotVendorByPart:  make(map[string]string),
	}

	for _, a := range articles {
		idx.StockByPart[a.PartNo] = a.Stock
		if _, ok := idx.ArticleByPart[a.PartNo]; !ok {
			idx.ArticleByPart[a.PartNo] = a
		}
	}
	for _, v := range vendors {
		idx.CurrencyByVendor[v.Number] = v.Currency
	}
	for _, l := range lots {
		if l.PartNo == "" {
			continue
		}
		if _, ok := idx.LotVendorByPart[l.PartNo]; !ok {
			idx.LotVendorByPart[l.PartNo] = l.VendorName
		}
	}

	seenPair := make(map[string]struct{})
	for _, b := range boms {
		if b.PartNo != "" {
			idx.BomParts[b.PartNo] = struct{}{}
		}
		if b.ProductNo != "" {
			idx.BomProducts[b.ProductNo] = struct{}{}
		}
		if b.PartNo != "" && b.ProductNo != "" {
			k := b.PartNo + "\x00" + b.ProductNo
			if _, dup := seenPair[k]; !dup {
				seenPair[k] = struct{}{}
				idx.ProductsByPart[b.PartNo] = append(idx.ProductsByPart[b.PartNo], b.ProductNo)
			}
		}
	}

	return idx
}

// InAnyBom — деталь упоминается хоть где-то: как компонент или как изделие.
func (idx *Index) InAnyBom(pn string) bool {
	if _, ok := idx.BomParts[pn]; ok {
		return true
	}
	_, ok := idx.BomProducts[pn]
	return ok
}

// SortedBomParts — компоненты в стабильном порядке для проходов-классификаторов.
func (idx *Index) SortedBomParts() []string {
	out := make([]string, 0, len(idx.BomParts))
	for pn := range idx.BomParts {
		out = append(out, pn)
	}
	sort.Strings(out)
	return out
}
