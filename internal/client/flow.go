package client

import (
	"context"
	"errors"

	"github.com/dalemusser/wastematch/internal/app/system/geo"
	"github.com/dalemusser/wastematch/internal/domain/models"
)

// Messages shown to the reporter.
const (
	MsgSubmitFailed     = "送出失敗，請確認網路或資料庫設定！"
	MsgConnectFailed    = "連線失敗，請檢查 API 主機或網路狀態！"
	MsgLocatePrefix     = "⚠️ 無法取得定位："
	MsgLocatorMissing   = "⚠️ 裝置不支援 GPS 功能"
	MsgNoNearbyOrg      = "附近暫無媒合業者"
	MsgMatchUnreachable = "媒合失敗，請確認後端是否啟動"
)

// ErrLocatorUnavailable means the device has no way to determine position.
var ErrLocatorUnavailable = errors.New("locator unavailable")

// Locator supplies the reporter's current position.
type Locator interface {
	Locate(ctx context.Context) (lat, lng float64, err error)
}

// FixedLocator always reports the same position.
type FixedLocator struct {
	Lat, Lng float64
}

func (l FixedLocator) Locate(context.Context) (float64, float64, error) {
	return l.Lat, l.Lng, nil
}

// NoLocator is a device without positioning.
type NoLocator struct{}

func (NoLocator) Locate(context.Context) (float64, float64, error) {
	return 0, 0, ErrLocatorUnavailable
}

// FlowResult is what the report form shows after a submission.
type FlowResult struct {
	Message       string               `json:"message"`
	GPSError      string               `json:"gps_error,omitempty"`      // set when no position could be obtained
	Nearest       *models.Organization `json:"nearest,omitempty"`        // nil when no match was found or attempted
	NavigationURL string               `json:"navigation_url,omitempty"` // directions to Nearest
}

// ReportFlow submits a report and then looks up the nearest organization
// handling the same waste type.
type ReportFlow struct {
	Client  *Client
	Locator Locator
}

// Run executes one submission. Every outcome is described in the result;
// the returned error is non-nil only when the report was not accepted or the
// match request could not be completed. A missing position is not an error.
// Nothing is retried.
func (f *ReportFlow) Run(ctx context.Context, in ReportInput) (FlowResult, error) {
	var res FlowResult

	msg, err := f.Client.SubmitReport(ctx, in)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			res.Message = MsgSubmitFailed
		} else {
			res.Message = MsgConnectFailed
		}
		return res, err
	}
	res.Message = msg

	loc := f.Locator
	if loc == nil {
		loc = NoLocator{}
	}
	lat, lng, err := loc.Locate(ctx)
	if err != nil {
		if errors.Is(err, ErrLocatorUnavailable) {
			res.GPSError = MsgLocatorMissing
		} else {
			res.GPSError = MsgLocatePrefix + err.Error()
		}
		return res, nil
	}

	org, found, err := f.Client.Match(ctx, lat, lng, in.Type)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			// The server answered; treat it like an empty result.
			res.Message = MsgNoNearbyOrg
			return res, nil
		}
		res.Message = MsgMatchUnreachable
		return res, err
	}
	if !found {
		res.Message = MsgNoNearbyOrg
		return res, nil
	}
	res.Nearest = &org
	res.NavigationURL = geo.DirectionsURLFor(org)
	return res, nil
}
