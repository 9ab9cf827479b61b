// Package client talks to the wastematch API. It backs the CLI and mirrors
// what the web form does: submit a report, then look up the nearest
// organization for the reporter's location.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/wastematch/internal/domain/models"
	"go.uber.org/zap"
)

// DefaultBaseURL is used when no host is configured.
const DefaultBaseURL = "https://localhost:3001"

// DefaultTimeout bounds every request made by a Client from New.
const DefaultTimeout = 10 * time.Second

// StatusError is a non-2xx reply. Message is the server's "message" field
// when it sent one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

// Client is an API client. The zero value is not usable; call New.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger
}

// New returns a Client for baseURL ("" means DefaultBaseURL).
func New(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: DefaultTimeout},
		Log:     logger,
	}
}

// ReportInput is what the report form collects.
type ReportInput struct {
	Type     string  `json:"type"`
	City     string  `json:"city"`
	Quantity float64 `json:"quantity"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
}

type messageBody struct {
	Message string `json:"message"`
}

// SubmitReport posts a report and returns the server's message.
func (c *Client) SubmitReport(ctx context.Context, in ReportInput) (string, error) {
	var out messageBody
	if err := c.do(ctx, http.MethodPost, "/api/report", nil, in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Match asks for the nearest organization to (lat, lng), optionally of typ.
// found is false when the server reports nothing in range.
func (c *Client) Match(ctx context.Context, lat, lng float64, typ string) (org models.Organization, found bool, err error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("type", typ)

	// The reply is either an organization or {"message": ...}; decode into
	// one shape and tell them apart by name and location.
	if err := c.do(ctx, http.MethodGet, "/api/match", q, nil, &org); err != nil {
		return models.Organization{}, false, err
	}
	if org.Name == "" || !org.Location.Valid() {
		return models.Organization{}, false, nil
	}
	return org, true, nil
}

// QueryOrgs lists organizations filtered by exact type and city. On any
// failure it returns an empty list along with the error.
func (c *Client) QueryOrgs(ctx context.Context, typ, city string) ([]models.Organization, error) {
	q := url.Values{}
	q.Set("type", typ)
	q.Set("city", city)

	orgs := []models.Organization{}
	if err := c.do(ctx, http.MethodGet, "/api/orgs", q, nil, &orgs); err != nil {
		return []models.Organization{}, err
	}
	if orgs == nil {
		orgs = []models.Organization{}
	}
	return orgs, nil
}

// Types returns the distinct organization types.
func (c *Client) Types(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, "/api/types", nil, nil, &out)
	return out, err
}

// Cities returns the distinct organization cities.
func (c *Client) Cities(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, "/api/cities", nil, nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Debug("api request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	c.Log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var mb messageBody
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&mb)
		return &StatusError{Code: resp.StatusCode, Message: mb.Message}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
