package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"integrity-service/internal/fileio"
)

// Export — отчёт как CSV-вложение. Номера колонок и порядок повторяют
// экранные таблицы, чтобы выгрузку можно было сверять глазами.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	report := chi.URLParam(r, "report")

	var headers []string
	var rows [][]string

	switch report {
	case "duplicate-parts":
		headers = []string{"PN 1", "Desc 1", "Stock 1", "PN 2", "Desc 2", "Stock 2", "Similarity %", "In BOM", "Action"}
		for _, d := range h.session.DuplicateParts() {
			rows = append(rows, []string{
				d.PN1, d.Desc1, fmtNum(d.Stock1),
				d.PN2, d.Desc2, fmtNum(d.Stock2),
				strconv.Itoa(d.Similarity), yn(d.InBom), d.Action,
			})
		}
	case "duplicate-vendors":
		headers = []string{"V#1", "Name 1", "Cur 1", "V#2", "Name 2", "Cur 2", "Similarity %", "Shared Roots", "Type", "Action"}
		m := h.session.DuplicateVendors()
		for _, p := range m.Translit {
			rows = append(rows, []string{
				p.CyrNum, p.CyrName, p.CyrCurrency, p.LatNum, p.LatName, p.LatCurrency,
				strconv.Itoa(p.Similarity), "", p.MatchType, p.Action,
			})
		}
		for _, p := range m.Root {
			rows = append(rows, []string{
				p.Num1, p.Name1, p.Currency1, p.Num2, p.Name2, p.Currency2,
				"", p.SharedRoots, p.MatchType, p.Action,
			})
		}
		for _, p := range m.Similar {
			rows = append(rows, []string{
				p.Num1, p.Name1, p.Currency1, p.Num2, p.Name2, p.Currency2,
				strconv.Itoa(p.Similarity), "", p.MatchType, p.Action,
			})
		}
	case "currency":
		headers = []string{"Lot", "Part No.", "Description", "Vendor No.", "Vendor", "Currency", "Current", "Likely", "Overstatement", "Qty"}
		for _, c := range h.session.CurrencyIssues() {
			rows = append(rows, []string{
				c.Lot, c.PartNo, c.Desc, c.VendorNo, c.VendorName, c.Currency,
				fmtNum(c.CurrentCost), fmtNum(c.LikelyCost), fmtNum(c.Overstatement), fmtNum(c.Qty),
			})
		}
	case "test-data":
		headers = []string{"Part No.", "Description", "Stock", "Cost", "In BOM", "Reason", "Action"}
		for _, t := range h.session.TestDataItems() {
			rows = append(rows, []string{
				t.PartNo, t.Desc, fmtNum(t.Stock), fmtNum(t.Cost), t.InBom, t.Reason, t.Action,
			})
		}
	case "zero-stock":
		headers = []string{"Part No.", "Description", "Stock", "Cost", "Procured", "Vendor", "Used In", "Action"}
		for _, z := range h.session.ZeroStockItems() {
			rows = append(rows, []string{
				z.PartNo, z.Desc, fmtNum(z.Stock), fmtNum(z.Cost), z.Procured, z.Vendor, z.UsedIn, z.Action,
			})
		}
	case "orphans":
		headers = []string{"Part No.", "Description", "Stock", "Unit Cost", "Value", "Group", "Procured"}
		for _, o := range h.session.OrphanItems() {
			rows = append(rows, []string{
				o.PartNo, o.Desc, fmtNum(o.Stock), fmtNum(o.UnitCost), fmtNum(o.Value), o.Group, o.Procured,
			})
		}
	case "matrix":
		m := h.session.BomMatrix()
		headers = append([]string{"Part No.", "Description", "In BOM"}, m.Products...)
		for _, p := range m.Parts {
			row := []string{p.PartNo, p.Desc, yn(p.InBom)}
			for _, prod := range m.Products {
				if qty, ok := p.Usage[prod]; ok && qty != 0 {
					row = append(row, fmtNum(qty))
				} else {
					row = append(row, "")
				}
			}
			rows = append(rows, row)
		}
	default:
		http.Error(w, "unknown report: "+report, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report+`.csv"`)
	if err := fileio.WriteCSV(w, headers, rows); err != nil {
		h.log.Error().Err(err).Str("report", report).Msg("write csv")
	}
}

func yn(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
