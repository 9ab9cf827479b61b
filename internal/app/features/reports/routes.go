// internal/app/features/reports/routes.go
package reports

import "github.com/go-chi/chi/v5"

// Routes registers the report endpoints on an /api router.
func Routes(h *Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/report", h.HandleCreate)
		r.Get("/reports", h.ServeList)
	}
}
