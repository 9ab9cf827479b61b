// internal/app/features/organizations/create.go
package organizations

import (
	"context"
	"net/http"
	"strings"

	organizationstore "github.com/dalemusser/wastematch/internal/app/store/organizations"
	"github.com/dalemusser/wastematch/internal/app/system/inputval"
	"github.com/dalemusser/wastematch/internal/app/system/respond"
	"github.com/dalemusser/wastematch/internal/app/system/timeouts"
	"github.com/dalemusser/wastematch/internal/domain/models"
	"github.com/dalemusser/waffle/httputil"
	"go.uber.org/zap"
)

const maxBodyBytes = 64 << 10

// createOrgBody is the POST /api/org payload. lat and lng arrive as numbers
// or numeric strings.
type createOrgBody struct {
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	City    string          `json:"city"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Lat     inputval.Number `json:"lat"`
	Lng     inputval.Number `json:"lng"`
}

// createOrgInput defines validation rules for creating an organization.
type createOrgInput struct {
	Name    string   `validate:"required,max=200" label:"name"`
	Type    string   `validate:"required,max=50" label:"type"`
	City    string   `validate:"max=100" label:"city"`
	Phone   string   `validate:"max=50" label:"phone"`
	Address string   `validate:"max=300" label:"address"`
	Lat     *float64 `validate:"required,latitude" label:"lat"`
	Lng     *float64 `validate:"required,longitude" label:"lng"`
}

type createOrgResponse struct {
	Message      string              `json:"message"`
	Organization models.Organization `json:"organization"`
}

// HandleCreate handles POST /api/org.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body createOrgBody
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := httputil.BindJSONAllowUnknown(r, &body); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode organization failed", err, msgBadBody)
		return
	}

	input := createOrgInput{
		Name:    strings.TrimSpace(body.Name),
		Type:    strings.TrimSpace(body.Type),
		City:    strings.TrimSpace(body.City),
		Phone:   strings.TrimSpace(body.Phone),
		Address: strings.TrimSpace(body.Address),
		Lat:     body.Lat.Ptr(),
		Lng:     body.Lng.Ptr(),
	}
	if result := inputval.Validate(input); result.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "invalid organization", nil, result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	org, err := organizationstore.New(h.DB).Create(ctx, models.Organization{
		Name:     input.Name,
		Type:     input.Type,
		City:     input.City,
		Phone:    input.Phone,
		Address:  input.Address,
		Location: models.NewGeoPoint(*input.Lat, *input.Lng),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create organization failed", err, msgCreateFailed)
		return
	}

	h.Log.Info("organization created",
		zap.String("id", org.ID.Hex()),
		zap.String("type", org.Type),
		zap.String("city", org.City))
	respond.OK(w, createOrgResponse{Message: msgCreated, Organization: org})
}
