package service

import (
	"fmt"
	"sync"

	"integrity-service/internal/audit/model"
)

// Таблицы-источники. Версия таблицы растёт при каждой полной замене;
// производные результаты помнят версии своих входов и пересчитываются
// лениво, только когда вход действительно менялся.
const (
	tabArticles = iota
	tabVendors
	tabLots
	tabBoms
	tabCount
)

// Категории отметок "исправлено" (ведёт презентационный слой).
const (
	CatDupParts   = "duplicateParts"
	CatDupVendors = "duplicateVendors"
	CatCurrency   = "currencyIssues"
	CatTestData   = "testData"
	CatZeroStock  = "zeroStock"
	CatOrphans    = "orphanItems"
)

type derived[T any] struct {
	mask  uint8 // какие таблицы входят в расчёт
	valid bool
	vers  [tabCount]uint64
	value T
}

func (d *derived[T]) get(vers [tabCount]uint64, compute func() T) T {
	if d.valid {
		stale := false
		for t := 0; t < tabCount; t++ {
			if d.mask&(1<<t) != 0 && d.vers[t] != vers[t] {
				stale = true
				break
			}
		}
		if !stale {
			return d.value
		}
	}
	d.value = compute()
	d.vers = vers
	d.valid = true
	return d.value
}

// Session — данные одного сеанса аудита. Всё живёт в памяти; свежий импорт
// таблицы выбрасывает её содержимое целиком и инвалидирует производные.
type Session struct {
	mu sync.Mutex

	articles []model.Article
	vendors  []model.Vendor
	lots     []model.StockLot
	boms     []model.BomLine
	ver      [tabCount]uint64

	idx        derived[*Index]
	dupParts   derived[[]model.PartMatch]
	dupVendors derived[model.VendorMatches]
	currency   derived[[]model.CurrencyIssue]
	testData   derived[[]model.TestDataItem]
	zeroStock  derived[[]model.ZeroStockItem]
	orphans    derived[[]model.OrphanItem]
	matrix     derived[model.Matrix]
}

func NewSession() *Session {
	s := &Session{}
	s.idx.mask = 1<<tabArticles | 1<<tabVendors | 1<<tabLots | 1<<tabBoms
	s.dupParts.mask = 1<<tabArticles | 1<<tabBoms
	s.dupVendors.mask = 1 << tabVendors
	s.currency.mask = 1<<tabLots | 1<<tabVendors
	s.testData.mask = 1<<tabArticles | 1<<tabBoms
	s.zeroStock.mask = 1<<tabArticles | 1<<tabLots | 1<<tabBoms
	s.orphans.mask = 1<<tabArticles | 1<<tabBoms
	s.matrix.mask = 1<<tabArticles | 1<<tabBoms
	return s
}

// ReplaceTable — полная замена одной из четырёх таблиц. Возвращает число строк.
func (s *Session) ReplaceTable(table string, recs []model.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch table {
	case "articles":
		s.articles = model.ToArticles(recs)
		s.ver[tabArticles]++
		return len(s.articles), nil
	case "vendors":
		s.vendors = model.ToVendors(recs)
		s.ver[tabVendors]++
		return len(s.vendors), nil
	case "lots":
		s.lots = model.ToStockLots(recs)
		s.ver[tabLots]++
		return len(s.lots), nil
	case "boms":
		s.boms = model.ToBomLines(recs)
		s.ver[tabBoms]++
		return len(s.boms), nil
	}
	return 0, fmt.Errorf("unknown table: %s", table)
}

// Варианты *Locked предполагают уже взятый s.mu: публичные геттеры берут
// замок на один результат, Summary — один раз на весь согласованный снимок.
func (s *Session) index() *Index {
	return s.idx.get(s.ver, func() *Index {
		return BuildIndex(s.articles, s.vendors, s.lots, s.boms)
	})
}

func (s *Session) duplicatePartsLocked() []model.PartMatch {
	return s.dupParts.get(s.ver, func() []model.PartMatch {
		return DuplicateParts(s.articles, s.index())
	})
}

func (s *Session) duplicateVendorsLocked() model.VendorMatches {
	return s.dupVendors.get(s.ver, func() model.VendorMatches {
		return DuplicateVendors(s.vendors)
	})
}

func (s *Session) currencyIssuesLocked() []model.CurrencyIssue {
	return s.currency.get(s.ver, func() []model.CurrencyIssue {
		return CurrencyIssues(s.lots, s.index())
	})
}

func (s *Session) testDataItemsLocked() []model.TestDataItem {
	return s.testData.get(s.ver, func() []model.TestDataItem {
		return TestDataItems(s.articles, s.index())
	})
}

func (s *Session) zeroStockItemsLocked() []model.ZeroStockItem {
	return s.zeroStock.get(s.ver, func() []model.ZeroStockItem {
		return ZeroStockItems(s.index())
	})
}

func (s *Session) orphanItemsLocked() []model.OrphanItem {
	return s.orphans.get(s.ver, func() []model.OrphanItem {
		return OrphanItems(s.articles, s.index())
	})
}

func (s *Session) bomMatrixLocked() model.Matrix {
	return s.matrix.get(s.ver, func() model.Matrix {
		return BomMatrix(s.articles, s.boms)
	})
}

func (s *Session) DuplicateParts() []model.PartMatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duplicatePartsLocked()
}

func (s *Session) DuplicateVendors() model.VendorMatches {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duplicateVendorsLocked()
}

func (s *Session) CurrencyIssues() []model.CurrencyIssue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currencyIssuesLocked()
}

func (s *Session) TestDataItems() []model.TestDataItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.testDataItemsLocked()
}

func (s *Session) ZeroStockItems() []model.ZeroStockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zeroStockItemsLocked()
}

func (s *Session) OrphanItems() []model.OrphanItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orphanItemsLocked()
}

func (s *Session) BomMatrix() model.Matrix {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bomMatrixLocked()
}

// TableCounts — объёмы загруженных таблиц для сводки.
type TableCounts struct {
	Articles   int `json:"articles"`
	Vendors    int `json:"vendors"`
	StockLots  int `json:"stockLots"`
	BomLines   int `json:"bomLines"`
	UniqueBoms int `json:"uniqueBoms"`
	BomParts   int `json:"bomParts"`
}

// IssueSummary — одна строка сводной таблицы проблем.
type IssueSummary struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Count    int    `json:"count"`
	Fixed    int    `json:"fixed"`
	Severity string `json:"severity"`
}

// Summary — сводка для первого экрана и для экспорта.
type Summary struct {
	Tables             TableCounts    `json:"tables"`
	Issues             []IssueSummary `json:"issues"`
	TotalOverstatement float64        `json:"totalOverstatement"`
	TotalOrphanValue   float64        `json:"totalOrphanValue"`
}

// ResolvedFunc — отвечает, помечена ли запись категории исправленной.
type ResolvedFunc func(category, id string) bool

// Summary — счётчики и денежные итоги. Итоги считаются только по
// неисправленным записям. Все производные берутся под одним замком:
// параллельный импорт таблицы не смешает в сводке старые и новые данные.
func (s *Session) Summary(resolved ResolvedFunc) Summary {
	if resolved == nil {
		resolved = func(string, string) bool { return false }
	}

	s.mu.Lock()
	dupParts := s.duplicatePartsLocked()
	dupVendors := s.duplicateVendorsLocked()
	currency := s.currencyIssuesLocked()
	testData := s.testDataItemsLocked()
	zeroStock := s.zeroStockItemsLocked()
	orphans := s.orphanItemsLocked()
	idx := s.index()
	counts := TableCounts{
		Articles:   len(s.articles),
		Vendors:    len(s.vendors),
		StockLots:  len(s.lots),
		BomLines:   len(s.boms),
		UniqueBoms: len(idx.BomProducts),
		BomParts:   len(idx.BomParts),
	}
	s.mu.Unlock()

	fixed := func(cat string, ids []string) int {
		n := 0
		for _, id := range ids {
			if resolved(cat, id) {
				n++
			}
		}
		return n
	}

	partIDs := make([]string, len(dupParts))
	for i, p := range dupParts {
		partIDs[i] = p.ID
	}
	vendorIDs := make([]string, 0, dupVendors.Total())
	for _, p := range dupVendors.Translit {
		vendorIDs = append(vendorIDs, p.ID)
	}
	for _, p := range dupVendors.Root {
		vendorIDs = append(vendorIDs, p.ID)
	}
	for _, p := range dupVendors.Similar {
		vendorIDs = append(vendorIDs, p.ID)
	}
	currencyIDs := make([]string, len(currency))
	for i, c := range currency {
		currencyIDs[i] = c.ID
	}
	testIDs := make([]string, len(testData))
	for i, t := range testData {
		testIDs[i] = t.ID
	}
	zeroIDs := make([]string, len(zeroStock))
	for i, z := range zeroStock {
		zeroIDs[i] = z.ID
	}
	orphanIDs := make([]string, len(orphans))
	for i, o := range orphans {
		orphanIDs[i] = o.ID
	}

	return Summary{
		Tables: counts,
		Issues: []IssueSummary{
			{Name: "Duplicate Parts", Category: CatDupParts, Count: len(dupParts), Fixed: fixed(CatDupParts, partIDs), Severity: "HIGH"},
			{Name: "Duplicate Vendors", Category: CatDupVendors, Count: dupVendors.Total(), Fixed: fixed(CatDupVendors, vendorIDs), Severity: "MEDIUM"},
			{Name: "Currency Issues", Category: CatCurrency, Count: len(currency), Fixed: fixed(CatCurrency, currencyIDs), Severity: "CRITICAL"},
			{Name: "Test Data", Category: CatTestData, Count: len(testData), Fixed: fixed(CatTestData, testIDs), Severity: "LOW"},
			{Name: "Zero Stock BOMs", Category: CatZeroStock, Count: len(zeroStock), Fixed: fixed(CatZeroStock, zeroIDs), Severity: "HIGH"},
			{Name: "Items Not in BOMs", Category: CatOrphans, Count: len(orphans), Fixed: fixed(CatOrphans, orphanIDs), Severity: "INFO"},
		},
		TotalOverstatement: round2(TotalOverstatement(currency, func(id string) bool { return resolved(CatCurrency, id) })),
		TotalOrphanValue:   round2(TotalOrphanValue(orphans, func(id string) bool { return resolved(CatOrphans, id) })),
	}
}
