// internal/app/features/organizations/seed.go
package organizations

import (
	"context"
	"net/http"

	organizationstore "github.com/dalemusser/wastematch/internal/app/store/organizations"
	"github.com/dalemusser/wastematch/internal/app/system/respond"
	"github.com/dalemusser/wastematch/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeSeed handles GET /api/seed-orgs. Every call inserts the demo
// organizations again.
func (h *Handler) ServeSeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	orgs, err := organizationstore.New(h.DB).CreateMany(ctx, organizationstore.SeedOrganizations())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "seed organizations failed", err, msgSeedFailed)
		return
	}
	h.Log.Info("seeded organizations", zap.Int("count", len(orgs)))
	respond.Message(w, http.StatusOK, msgSeeded)
}
