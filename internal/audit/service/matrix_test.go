package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integrity-service/internal/audit/model"
)

func TestBomMatrix(t *testing.T) {
	articles := []model.Article{
		{PartNo: "P1", Desc: "Plate"},
		{PartNo: "P2", Desc: "Unused part"},
	}
	boms := []model.BomLine{
		{PartNo: "P1", ProductNo: "PR1", Qty: 2},
		{PartNo: "P1", ProductNo: "PR1", Qty: 3}, // повтор пары — суммируется
		{PartNo: "P1", ProductNo: "PR2", Qty: 1},
		{PartNo: "", ProductNo: "PR3", Qty: 1}, // неполные строки пропускаются
	}

	m := BomMatrix(articles, boms)
	assert.Equal(t, []string{"PR1", "PR2"}, m.Products)
	require.Len(t, m.Parts, 2)

	p1 := m.Parts[0]
	assert.Equal(t, "P1", p1.PartNo)
	assert.True(t, p1.InBom)
	assert.Equal(t, map[string]float64{"PR1": 5, "PR2": 1}, p1.Usage)

	// каталожная деталь без вхождений — нулевая строка
	p2 := m.Parts[1]
	assert.Equal(t, "P2", p2.PartNo)
	assert.False(t, p2.InBom)
	assert.Empty(t, p2.Usage)
}

func TestBomMatrixEmptyInputs(t *testing.T) {
	m := BomMatrix(nil, []model.BomLine{{PartNo: "P1", ProductNo: "PR1", Qty: 1}})
	assert.Empty(t, m.Parts)
	assert.Empty(t, m.Products)

	m = BomMatrix([]model.Article{{PartNo: "P1"}}, nil)
	assert.Empty(t, m.Parts)
}

func TestFilterMatrix(t *testing.T) {
	m := model.Matrix{
		Products: []string{"PR1"},
		Parts: []model.MatrixRow{
			{PartNo: "P1", Desc: "Plate", Usage: map[string]float64{"PR1": 1}, InBom: true},
			{PartNo: "P2", Desc: "Unused part", Usage: map[string]float64{}, InBom: false},
		},
	}

	got := FilterMatrix(m, "plate", true, true)
	require.Len(t, got.Parts, 1)
	assert.Equal(t, "P1", got.Parts[0].PartNo)

	got = FilterMatrix(m, "p", true, false)
	require.Len(t, got.Parts, 1)
	assert.Equal(t, "P1", got.Parts[0].PartNo)

	got = FilterMatrix(m, "", false, true)
	require.Len(t, got.Parts, 1)
	assert.Equal(t, "P2", got.Parts[0].PartNo)

	// оба переключателя выключены — пусто, и это не ошибка
	got = FilterMatrix(m, "", false, false)
	assert.Empty(t, got.Parts)
	assert.Equal(t, []string{"PR1"}, got.Products)
}
