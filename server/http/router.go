package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	audHnd "integrity-service/internal/audit/handler"
	"integrity-service/internal/config"
	"integrity-service/internal/middleware"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	h := audHnd.New(cfg, logger)

	// health-check
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/tables/{table}", h.ImportTable)

		r.Get("/summary", h.Summary)
		r.Get("/duplicates/parts", h.DuplicateParts)
		r.Get("/duplicates/vendors", h.DuplicateVendors)
		r.Get("/issues/currency", h.CurrencyIssues)
		r.Get("/issues/testdata", h.TestData)
		r.Get("/issues/zerostock", h.ZeroStock)
		r.Get("/issues/orphans", h.Orphans)
		r.Get("/matrix", h.Matrix)

		r.Post("/fixes/{category}/{id}", h.ToggleFix)
		r.Get("/fixes/{category}", h.Fixes)

		r.Get("/export/{report}", h.Export)
	})

	return r
}
