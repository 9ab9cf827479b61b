// internal/app/features/organizations/routes.go
package organizations

import "github.com/go-chi/chi/v5"

// Routes registers the organization endpoints on an /api router. The paths
// share the /api prefix with reports and match, so bootstrap applies these
// with Group instead of mounting a subrouter.
func Routes(h *Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/orgs", h.ServeList)
		r.Post("/org", h.HandleCreate)

		// distinct values for the query form
		r.Get("/types", h.ServeTypes)
		r.Get("/cities", h.ServeCities)

		// demo data
		r.Get("/seed-orgs", h.ServeSeed)
	}
}
