// internal/app/features/match/handler.go
package match

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/wastematch/internal/app/features/errors"
	"github.com/dalemusser/wastematch/internal/app/system/geo"
	"github.com/dalemusser/wastematch/internal/app/system/inputval"
	"github.com/dalemusser/wastematch/internal/app/system/respond"
	"github.com/dalemusser/wastematch/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

const (
	msgMissingCoords = "缺少經緯度參數"
	msgBadCoords     = "經緯度格式錯誤"
	msgNoMatch       = "無附近媒合業者"
	msgMatchFailed   = "媒合失敗"
)

// Handler serves nearest-organization lookups through a geo.Matcher.
type Handler struct {
	Matcher geo.Matcher
	RadiusM float64
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs a match Handler. A non-positive radius means
// geo.DefaultRadiusM.
func NewHandler(m geo.Matcher, radiusM float64, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Matcher: m,
		RadiusM: radiusM,
		ErrLog:  errLog,
		Log:     logger,
	}
}

// ServeMatch handles GET /api/match?lat=&lng=&type=.
//
// Responds with the nearest organization within the radius, or
// {"message": "無附近媒合業者"} with status 200 when none is in range.
func (h *Handler) ServeMatch(w http.ResponseWriter, r *http.Request) {
	latStr, lngStr := query.Get(r, "lat"), query.Get(r, "lng")
	if latStr == "" || lngStr == "" {
		h.ErrLog.LogBadRequest(w, r, "match without coordinates", nil, msgMissingCoords)
		return
	}

	lat, err := inputval.ParseFloat(latStr)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "match lat not a number", err, msgBadCoords)
		return
	}
	lng, err := inputval.ParseFloat(lngStr)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "match lng not a number", err, msgBadCoords)
		return
	}
	if err := geo.ValidateLatLng(lat, lng); err != nil {
		h.ErrLog.LogBadRequest(w, r, "match coordinates out of range", err, msgBadCoords)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	org, found, err := h.Matcher.Nearest(ctx, geo.Query{
		Lat:          lat,
		Lng:          lng,
		MaxDistanceM: h.RadiusM,
		Type:         query.Get(r, "type"),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "nearest organization lookup failed", err, msgMatchFailed)
		return
	}
	if !found {
		respond.Message(w, http.StatusOK, msgNoMatch)
		return
	}
	respond.OK(w, org)
}
