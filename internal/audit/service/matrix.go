package service

import (
	"sort"
	"strings"

	"integrity-service/internal/audit/model"
)

// BomMatrix — разворот плоских строк спецификаций в таблицу
// деталь × изделие. Количества по одной паре (деталь, изделие)
// суммируются. Детали каталога без единого вхождения в спецификации
// попадают в матрицу нулевыми строками.
func BomMatrix(articles []model.Article, boms []model.BomLine) model.Matrix {
	out := model.Matrix{Parts: []model.MatrixRow{}, Products: []string{}}
	if len(boms) == 0 || len(articles) == 0 {
		return out
	}

	usage := make(map[string]map[string]float64)
	products := make(map[string]struct{})
	for _, b := range boms {
		if b.PartNo == "" || b.ProductNo == "" {
			continue
		}
		products[b.ProductNo] = struct{}{}
		if usage[b.PartNo] == nil {
			usage[b.PartNo] = make(map[string]float64)
		}
		usage[b.PartNo][b.ProductNo] += b.Qty
	}
	out.Products = model.SortedKeys(products)

	descByPart := make(map[string]string, len(articles))
	for _, a := range articles {
		if _, ok := descByPart[a.PartNo]; !ok {
			descByPart[a.PartNo] = a.Desc
		}
	}

	for _, pn := range model.SortedKeys(usage) {
		out.Parts = append(out.Parts, model.MatrixRow{
			PartNo: pn,
			Desc:   model.Truncate(descByPart[pn], 40),
			Usage:  usage[pn],
			InBom:  true,
		})
	}
	for _, a := range articles {
		if _, used := usage[a.PartNo]; used {
			continue
		}
		out.Parts = append(out.Parts, model.MatrixRow{
			PartNo: a.PartNo,
			Desc:   model.Truncate(a.Desc, 40),
			Usage:  map[string]float64{},
			InBom:  false,
		})
	}
	sort.SliceStable(out.Parts, func(i, j int) bool {
		return out.Parts[i].PartNo < out.Parts[j].PartNo
	})
	return out
}

// FilterMatrix — отображаемый срез матрицы: текстовый фильтр по номеру и
// описанию плюс два независимых переключателя. Оба выключены — пустой
// результат, это осознанное поведение, а не ошибка.
func FilterMatrix(m model.Matrix, query string, showUsed, showUnused bool) model.Matrix {
	parts := m.Parts
	if query != "" {
		q := strings.ToLower(query)
		filtered := make([]model.MatrixRow, 0, len(parts))
		for _, p := range parts {
			if strings.Contains(strings.ToLower(p.PartNo), q) ||
				strings.Contains(strings.ToLower(p.Desc), q) {
				filtered = append(filtered, p)
			}
		}
		parts = filtered
	}
	if !showUsed || !showUnused {
		filtered := make([]model.MatrixRow, 0, len(parts))
		for _, p := range parts {
			if (p.InBom && showUsed) || (!p.InBom && showUnused) {
				filtered = append(filtered, p)
			}
		}
		parts = filtered
	}
	return model.Matrix{Parts: parts, Products: m.Products}
}
