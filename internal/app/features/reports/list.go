// internal/app/features/reports/list.go
package reports

import (
	"context"
	"net/http"

	reportstore "github.com/dalemusser/wastematch/internal/app/store/reports"
	"github.com/dalemusser/wastematch/internal/app/system/respond"
	"github.com/dalemusser/wastematch/internal/app/system/timeouts"
)

// ServeList handles GET /api/reports. There is no pagination.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	reps, err := reportstore.New(h.DB).List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list reports failed", err, msgLoadFailed)
		return
	}
	respond.OK(w, reps)
}
