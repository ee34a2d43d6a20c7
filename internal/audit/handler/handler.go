package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"integrity-service/internal/audit/fixes"
	"integrity-service/internal/audit/model"
	"integrity-service/internal/audit/service"
	"integrity-service/internal/config"
	"integrity-service/internal/fileio"
)

// Handler — HTTP-обвязка вокруг сеанса аудита: импорт таблиц, отчёты,
// сводная матрица, экспорт и отметки "исправлено".
type Handler struct {
	cfg     config.Config
	log     zerolog.Logger
	session *service.Session
	fixes   *fixes.Store
}

func New(cfg config.Config, logger zerolog.Logger) *Handler {
	return &Handler{
		cfg:     cfg,
		log:     logger,
		session: service.NewSession(),
		fixes:   fixes.NewStore(),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, map[string]string{"status": "ok"})
}

// ImportTable — полная замена одной таблицы из загруженного файла
// (csv/xls/xlsx). Частичных обновлений нет: импорт выбрасывает прежнее
// содержимое таблицы и инвалидирует производные отчёты.
func (h *Handler) ImportTable(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table := chi.URLParam(r, "table")

	defer r.Body.Close()
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	headerRow := atoi(r.FormValue("header_row"), 1)
	maps, err := fileio.ReadAnyMaps(file, header.Filename, headerRow)
	if err != nil {
		http.Error(w, "failed to read "+table+": "+err.Error(), http.StatusBadRequest)
		return
	}
	recs := make([]model.Record, len(maps))
	for i, m := range maps {
		recs[i] = model.Record(m)
	}

	n, err := h.session.ReplaceTable(table, recs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.log.Info().
		Str("rid", r.Header.Get("X-Request-ID")).
		Str("table", table).
		Str("file", header.Filename).
		Int("rows", n).
		Dur("elapsed", time.Since(start)).
		Msg("table imported")

	writeJSON(w, h.log, map[string]any{"table": table, "rows": n})
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, h.session.Summary(h.fixes.Resolved))
}

func (h *Handler) DuplicateParts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, h.session.DuplicateParts())
}

func (h *Handler) DuplicateVendors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, h.session.DuplicateVendors())
}

func (h *Handler) CurrencyIssues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, h.session.CurrencyIssues())
}

func (h *Handler) TestData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, h.session.TestDataItems())
}

func (h *Handler) ZeroStock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, h.session.ZeroStockItems())
}

func (h *Handler) Orphans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, h.session.OrphanItems())
}

// Matrix — отфильтрованный вид сводной матрицы.
// q — подстрока в номере/описании, used/unused — переключатели включения.
func (h *Handler) Matrix(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	showUsed := toBool(r.URL.Query().Get("used"), true)
	showUnused := toBool(r.URL.Query().Get("unused"), true)
	m := service.FilterMatrix(h.session.BomMatrix(), q, showUsed, showUnused)
	writeJSON(w, h.log, m)
}

func (h *Handler) ToggleFix(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	id := chi.URLParam(r, "id")
	state := h.fixes.Toggle(category, id)
	writeJSON(w, h.log, map[string]any{"category": category, "id": id, "fixed": state})
}

func (h *Handler) Fixes(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	writeJSON(w, h.log, h.fixes.Category(category))
}
