package model

import (
	"sort"
	"strings"
)

// Колонки экспорта. Синонимы через "|" — см. Record.
const (
	ColPartNo     = "Part No.|part_no"
	ColPartDesc   = "Part description|description"
	ColInStock    = "In stock|in_stock"
	ColCost       = "Cost|cost"
	ColProcured   = "Procured|procured|Is procured item"
	ColGroup      = "Group|group|Item group|Group name"
	ColVendorNum  = "Number|number"
	ColVendorName = "Name|name"
	ColCurrency   = "Currency|currency"
	ColLot        = "Lot|lot"
	ColLotVendor  = "Vendor number|vendor_number"
	ColUnitCost   = "Unit cost|unit_cost"
	ColLotQty     = "Quantity|quantity|In stock"
	ColLotVName   = "Vendor name|vendor_name"
	ColComponent  = "Part No.|part_no|Component"
	ColProduct    = "Product number|product_number|Product"
	ColBomQty     = "Quantity|quantity|Qty"
)

// Article — строка каталога (identity = Part No., уникальность не гарантируется).
type Article struct {
	PartNo   string
	Desc     string
	Stock    float64
	Cost     float64
	Procured string
	Group    string
}

// Vendor — строка справочника поставщиков.
type Vendor struct {
	Number   string
	Name     string
	Currency string
}

// StockLot — закупленная партия; ссылки на Article/Vendor денормализованы.
type StockLot struct {
	Lot        string
	PartNo     string
	VendorNo   string
	UnitCost   float64
	Qty        float64
	VendorName string
	Desc       string
}

// BomLine — строка спецификации: компонент × изделие × количество.
type BomLine struct {
	PartNo    string
	ProductNo string
	Qty       float64
}

func ToArticles(recs []Record) []Article {
	out := make([]Article, 0, len(recs))
	for _, r := range recs {
		out = append(out, Article{
			PartNo:   r.Str(ColPartNo),
			Desc:     r.Str(ColPartDesc),
			Stock:    r.Num(ColInStock, 0),
			Cost:     r.Num(ColCost, 0),
			Procured: r.Str(ColProcured),
			Group:    r.Str(ColGroup),
		})
	}
	return out
}

func ToVendors(recs []Record) []Vendor {
	out := make([]Vendor, 0, len(recs))
	for _, r := range recs {
		out = append(out, Vendor{
			Number:   r.Str(ColVendorNum),
			Name:     r.Str(ColVendorName),
			Currency: r.Str(ColCurrency),
		})
	}
	return out
}

func ToStockLots(recs []Record) []StockLot {
	out := make([]StockLot, 0, len(recs))
	for _, r := range recs {
		out = append(out, StockLot{
			Lot:        r.Str(ColLot),
			PartNo:     r.Str(ColPartNo),
			VendorNo:   r.Str(ColLotVendor),
			UnitCost:   r.Num(ColUnitCost, 0),
			Qty:        r.Num(ColLotQty, 1),
			VendorName: r.Str(ColLotVName),
			Desc:       r.Str(ColPartDesc),
		})
	}
	return out
}

func ToBomLines(recs []Record) []BomLine {
	out := make([]BomLine, 0, len(recs))
	for _, r := range recs {
		out = append(out, BomLine{
			PartNo:    r.Str(ColComponent),
			ProductNo: r.Str(ColProduct),
			Qty:       r.Num(ColBomQty, 1),
		})
	}
	return out
}

// PairKey — ключ неупорядоченной пары: пара учитывается системой ровно один раз.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// YesNo — нормализация флага закупки; пустое значение трактуем как Yes.
func YesNo(s string) string {
	switch strings.TrimSpace(s) {
	case "Yes", "Y", "1", "yes", "":
		return "Yes"
	}
	return "No"
}

// Truncate — ограничение длины для табличного вывода (по рунам, не байтам).
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// SortedKeys — детерминированный обход map'ов в отчётах.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
