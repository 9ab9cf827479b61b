// internal/app/features/organizations/list.go
package organizations

import (
	"context"
	"net/http"

	organizationstore "github.com/dalemusser/wastematch/internal/app/store/organizations"
	"github.com/dalemusser/wastematch/internal/app/system/respond"
	"github.com/dalemusser/wastematch/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /api/orgs?type=&city=. Both filters are exact
// matches; an empty value leaves that field unconstrained.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f := organizationstore.Filter{
		Type: query.Get(r, "type"),
		City: query.Get(r, "city"),
	}
	orgs, err := organizationstore.New(h.DB).Find(ctx, f)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "find organizations failed", err, msgLoadFailed)
		return
	}
	respond.OK(w, orgs)
}

// ServeTypes handles GET /api/types.
func (h *Handler) ServeTypes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	types, err := organizationstore.New(h.DB).DistinctTypes(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "distinct organization types failed", err, msgLoadFailed)
		return
	}
	respond.OK(w, types)
}

// ServeCities handles GET /api/cities.
func (h *Handler) ServeCities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cities, err := organizationstore.New(h.DB).DistinctCities(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "distinct organization cities failed", err, msgLoadFailed)
		return
	}
	respond.OK(w, cities)
}
