// internal/app/features/match/routes.go
package match

import "github.com/go-chi/chi/v5"

// Routes registers GET /match on an /api router.
func Routes(h *Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/match", h.ServeMatch)
	}
}
