package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integrity-service/internal/audit/model"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()

	_, err := s.ReplaceTable("articles", []model.Record{
		{"Part No.": "P1", "Part description": "Plate", "In stock": "10", "Cost": "2"},
		{"Part No.": "O-1", "Part description": "Spare flange", "In stock": "3", "Cost": "10"},
	})
	require.NoError(t, err)

	_, err = s.ReplaceTable("boms", []model.Record{
		{"Component": "P1", "Product number": "PR1", "Quantity": "2"},
	})
	require.NoError(t, err)

	return s
}

func TestReplaceTable(t *testing.T) {
	s := NewSession()
	n, err := s.ReplaceTable("vendors", []model.Record{
		{"Number": "V1", "Name": "Acme", "Currency": "EUR"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// замена целиком, не дозапись
	n, err = s.ReplaceTable("vendors", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = s.ReplaceTable("nonsense", nil)
	assert.EqualError(t, err, "unknown table: nonsense")
}

func TestSessionMemoization(t *testing.T) {
	s := testSession(t)

	m1 := s.BomMatrix()
	m2 := s.BomMatrix()
	require.NotEmpty(t, m1.Parts)
	// повторный вызов без смены входов отдаёт тот же результат без пересчёта
	assert.Same(t, &m1.Parts[0], &m2.Parts[0])

	// замена таблицы, не входящей в расчёт, кэш не трогает
	_, err := s.ReplaceTable("vendors", []model.Record{
		{"Number": "V1", "Name": "Acme", "Currency": "EUR"},
	})
	require.NoError(t, err)
	m3 := s.BomMatrix()
	assert.Same(t, &m1.Parts[0], &m3.Parts[0])

	// замена входа инвалидирует
	_, err = s.ReplaceTable("boms", []model.Record{
		{"Component": "P1", "Product number": "PR2", "Quantity": "1"},
	})
	require.NoError(t, err)
	m4 := s.BomMatrix()
	assert.Equal(t, []string{"PR2"}, m4.Products)
}

func TestSessionEmpty(t *testing.T) {
	s := NewSession()

	assert.Empty(t, s.DuplicateParts())
	assert.Equal(t, 0, s.DuplicateVendors().Total())
	assert.Empty(t, s.CurrencyIssues())
	assert.Empty(t, s.TestDataItems())
	assert.Empty(t, s.ZeroStockItems())
	assert.Empty(t, s.OrphanItems())
	assert.Empty(t, s.BomMatrix().Parts)

	sum := s.Summary(nil)
	assert.Equal(t, TableCounts{}, sum.Tables)
	assert.Equal(t, 0.0, sum.TotalOverstatement)
	require.Len(t, sum.Issues, 6)
	for _, is := range sum.Issues {
		assert.Zero(t, is.Count)
	}
}

// Сводка собирается под одним замком: параллельная замена таблицы не
// должна давать смесь старых и новых производных. Каталог A содержит
// ровно одну сироту, каталог B — ровно одну тестовую запись; в любом
// согласованном снимке сумма двух счётчиков равна единице.
func TestSessionSummaryConsistentSnapshot(t *testing.T) {
	s := NewSession()

	catalogA := []model.Record{
		{"Part No.": "O-1", "Part description": "Spare flange", "In stock": "3", "Cost": "10"},
	}
	catalogB := []model.Record{
		{"Part No.": "99990002", "Part description": "Demo bracket", "In stock": "0", "Cost": "1"},
	}
	_, err := s.ReplaceTable("articles", catalogA)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				_, _ = s.ReplaceTable("articles", catalogB)
			} else {
				_, _ = s.ReplaceTable("articles", catalogA)
			}
		}
	}()

	for i := 0; i < 200; i++ {
		sum := s.Summary(nil)
		byCat := make(map[string]IssueSummary)
		for _, is := range sum.Issues {
			byCat[is.Category] = is
		}
		assert.Equal(t, 1, byCat[CatOrphans].Count+byCat[CatTestData].Count)
	}
	<-done
}

func TestSessionSummary(t *testing.T) {
	s := testSession(t)

	sum := s.Summary(nil)
	assert.Equal(t, 2, sum.Tables.Articles)
	assert.Equal(t, 1, sum.Tables.BomLines)
	assert.Equal(t, 1, sum.Tables.UniqueBoms)
	assert.Equal(t, 1, sum.Tables.BomParts)

	require.Len(t, sum.Issues, 6)
	byCat := make(map[string]IssueSummary)
	for _, is := range sum.Issues {
		byCat[is.Category] = is
	}
	assert.Equal(t, "CRITICAL", byCat[CatCurrency].Severity)
	assert.Equal(t, "INFO", byCat[CatOrphans].Severity)

	// O-1 с остатком вне спецификаций
	assert.Equal(t, 1, byCat[CatOrphans].Count)
	assert.Equal(t, 0, byCat[CatOrphans].Fixed)
	assert.Equal(t, 30.0, sum.TotalOrphanValue)

	// отметка "исправлено" убирает запись из денежного итога
	sum = s.Summary(func(category, id string) bool {
		return category == CatOrphans && id == "O-1"
	})
	byCat = make(map[string]IssueSummary)
	for _, is := range sum.Issues {
		byCat[is.Category] = is
	}
	assert.Equal(t, 1, byCat[CatOrphans].Count)
	assert.Equal(t, 1, byCat[CatOrphans].Fixed)
	assert.Equal(t, 0.0, sum.TotalOrphanValue)
}
