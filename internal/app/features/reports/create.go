// internal/app/features/reports/create.go
package reports

import (
	"context"
	"net/http"
	"strings"

	reportstore "github.com/dalemusser/wastematch/internal/app/store/reports"
	"github.com/dalemusser/wastematch/internal/app/system/inputval"
	"github.com/dalemusser/wastematch/internal/app/system/respond"
	"github.com/dalemusser/wastematch/internal/app/system/timeouts"
	"github.com/dalemusser/wastematch/internal/domain/models"
	"github.com/dalemusser/waffle/httputil"
	"go.uber.org/zap"
)

// createReportBody is the POST /api/report payload. A time field, if sent,
// is ignored.
type createReportBody struct {
	Type     string          `json:"type"`
	City     string          `json:"city"`
	Quantity inputval.Number `json:"quantity"`
	Name     string          `json:"name"`
	Phone    string          `json:"phone"`
}

type createReportInput struct {
	Type     string   `validate:"required,max=50" label:"type"`
	City     string   `validate:"required,max=100" label:"city"`
	Quantity *float64 `validate:"required,gte=0" label:"quantity"`
	Name     string   `validate:"required,max=100" label:"name"`
	Phone    string   `validate:"required,max=50" label:"phone"`
}

// HandleCreate handles POST /api/report.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body createReportBody
	r.Body = http.MaxBytesReader(w, r.Body, maxReportsBytes)
	if err := httputil.BindJSONAllowUnknown(r, &body); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode report failed", err, msgBadBody)
		return
	}

	input := createReportInput{
		Type:     strings.TrimSpace(body.Type),
		City:     strings.TrimSpace(body.City),
		Quantity: body.Quantity.Ptr(),
		Name:     strings.TrimSpace(body.Name),
		Phone:    strings.TrimSpace(body.Phone),
	}
	if result := inputval.Validate(input); result.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "invalid report", nil, result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rep, err := reportstore.New(h.DB).Create(ctx, models.Report{
		Type:     input.Type,
		City:     input.City,
		Quantity: *input.Quantity,
		Name:     input.Name,
		Phone:    input.Phone,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "insert report failed", err, msgWriteFailed)
		return
	}

	h.Log.Info("report received",
		zap.String("id", rep.ID.Hex()),
		zap.String("type", rep.Type),
		zap.String("city", rep.City),
		zap.Float64("quantity", rep.Quantity))
	respond.Message(w, http.StatusOK, msgReported)
}
