package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integrity-service/internal/audit/model"
)

func TestCurrencyIssues(t *testing.T) {
	vendors := []model.Vendor{
		{Number: "V1", Name: "Постачальник", Currency: "UAH"},
		{Number: "V2", Name: "Euro Co", Currency: "EUR"},
	}
	lots := []model.StockLot{
		{Lot: "L1", PartNo: "P1", VendorNo: "V1", UnitCost: 900, Qty: 2},
		{Lot: "L2", PartNo: "P2", VendorNo: "V2", UnitCost: 900, Qty: 1}, // не UAH
		{Lot: "L3", PartNo: "P3", VendorNo: "V1", UnitCost: 50, Qty: 1},  // порог не превышен
		{Lot: "L4", PartNo: "P4", VendorNo: "V1", UnitCost: 90, Qty: 1},
	}
	idx := BuildIndex(nil, vendors, lots, nil)

	issues := CurrencyIssues(lots, idx)
	require.Len(t, issues, 2)

	// по убыванию завышения
	assert.Equal(t, "L1", issues[0].ID)
	assert.Equal(t, 20.0, issues[0].LikelyCost)
	assert.Equal(t, 880.0, issues[0].Overstatement)
	assert.Equal(t, "L4", issues[1].ID)
	assert.Equal(t, 2.0, issues[1].LikelyCost)
	assert.Equal(t, 88.0, issues[1].Overstatement)

	// завышение умножается на количество в партии
	assert.Equal(t, 880.0*2+88.0, TotalOverstatement(issues, nil))
	assert.Equal(t, 88.0, TotalOverstatement(issues, func(id string) bool { return id == "L1" }))
}

func TestTestDataItems(t *testing.T) {
	articles := []model.Article{
		{PartNo: "99990001", Desc: "Demo bracket", Stock: 0, Cost: 1},
		{PartNo: "P-200", Desc: "Load test fixture", Stock: 5},
		{PartNo: "P-300", Desc: "Test data sheet rev A"}, // исключение: "test data"
		{PartNo: "2.5E+07", Desc: "Plate"},
		{PartNo: "P-400", Desc: "Testing jig"},
		{PartNo: "P-500", Desc: "Plain washer holder"},
	}
	boms := []model.BomLine{{PartNo: "P-400", ProductNo: "PR1", Qty: 1}}
	idx := BuildIndex(articles, nil, nil, boms)

	items := TestDataItems(articles, idx)
	require.Len(t, items, 4)

	// причины накапливаются
	assert.Equal(t, "99990001", items[0].PartNo)
	assert.Equal(t, "Contains 'demo', Placeholder", items[0].Reason)
	assert.Equal(t, "N", items[0].InBom)
	assert.Equal(t, "DELETE", items[0].Action) // нет ни остатка, ни вхождений

	assert.Equal(t, "P-200", items[1].PartNo)
	assert.Equal(t, "Contains 'test'", items[1].Reason)
	assert.Equal(t, "REVIEW", items[1].Action) // остаток есть

	assert.Equal(t, "2.5E+07", items[2].PartNo)
	assert.Equal(t, "Excel error", items[2].Reason)

	assert.Equal(t, "P-400", items[3].PartNo)
	assert.Equal(t, "Y", items[3].InBom)
	assert.Equal(t, "REVIEW", items[3].Action)
}

func TestZeroStockItems(t *testing.T) {
	articles := []model.Article{
		{PartNo: "P-100", Desc: "Plate steel", Stock: 0, Cost: 12.5, Procured: "No"},
		{PartNo: "P-101", Desc: "In stock part", Stock: 4},
	}
	lots := []model.StockLot{
		{Lot: "L1", PartNo: "TEMP-001", VendorName: "Acme Supply"},
	}
	boms := []model.BomLine{
		{PartNo: "TEMP-001", ProductNo: "PRODA", Qty: 1},
		{PartNo: "P-100", ProductNo: "PRODA", Qty: 2},
		{PartNo: "P-100", ProductNo: "PRODB", Qty: 1},
		{PartNo: "P-101", ProductNo: "PRODA", Qty: 1},
		{PartNo: "12345", ProductNo: "PRODB", Qty: 1},
	}
	idx := BuildIndex(articles, nil, lots, boms)

	items := ZeroStockItems(idx)
	require.Len(t, items, 3)

	// порядок по номеру детали
	assert.Equal(t, "12345", items[0].PartNo)
	assert.Equal(t, "NOT IN ARTICLES", items[0].Desc)
	assert.True(t, items[0].IsTemp) // голый пятизначный номер
	assert.Equal(t, "REPLACE PN", items[0].Action)

	assert.Equal(t, "P-100", items[1].PartNo)
	assert.Equal(t, "Plate steel", items[1].Desc)
	assert.Equal(t, 12.5, items[1].Cost)
	assert.Equal(t, "No", items[1].Procured)
	assert.Equal(t, "PRODA, PRODB", items[1].UsedIn)
	assert.Equal(t, "PROCURE", items[1].Action)

	assert.Equal(t, "TEMP-001", items[2].PartNo)
	assert.Equal(t, "NOT IN ARTICLES", items[2].Desc)
	assert.Equal(t, "Yes", items[2].Procured) // неизвестная деталь считается закупаемой
	assert.Equal(t, "Acme Supply", items[2].Vendor)
	assert.Equal(t, "REPLACE PN", items[2].Action)
}

func TestOrphanItems(t *testing.T) {
	articles := []model.Article{
		{PartNo: "O-1", Desc: "Spare flange", Stock: 10, Cost: 5},
		{PartNo: "O-2", Desc: "Legacy motor", Stock: 2, Cost: 100, Group: "Motors", Procured: "No"},
		{PartNo: "O-3", Desc: "Empty shelf", Stock: 0, Cost: 50}, // нет остатка
		{PartNo: "P-100", Desc: "Used part", Stock: 1, Cost: 1},  // есть в спецификации
	}
	boms := []model.BomLine{{PartNo: "P-100", ProductNo: "PRODA", Qty: 1}}
	idx := BuildIndex(articles, nil, nil, boms)

	items := OrphanItems(articles, idx)
	require.Len(t, items, 2)

	// по убыванию замороженной стоимости
	assert.Equal(t, "O-2", items[0].PartNo)
	assert.Equal(t, 200.0, items[0].Value)
	assert.Equal(t, "Motors", items[0].Group)
	assert.Equal(t, "No", items[0].Procured)

	assert.Equal(t, "O-1", items[1].PartNo)
	assert.Equal(t, 50.0, items[1].Value)
	assert.Equal(t, "Unknown", items[1].Group)
	assert.Equal(t, "Yes", items[1].Procured)

	assert.Equal(t, 250.0, TotalOrphanValue(items, nil))
	assert.Equal(t, 50.0, TotalOrphanValue(items, func(id string) bool { return id == "O-2" }))
}

func TestOrphanItemsProductsAreNotOrphans(t *testing.T) {
	// изделие само в каталоге: упомянуто спецификацией как продукт, не компонент
	articles := []model.Article{{PartNo: "PRODA", Desc: "Assembly", Stock: 3, Cost: 10}}
	boms := []model.BomLine{{PartNo: "X", ProductNo: "PRODA", Qty: 1}}
	idx := BuildIndex(articles, nil, nil, boms)
	assert.Empty(t, OrphanItems(articles, idx))
}
