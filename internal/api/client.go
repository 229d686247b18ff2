// Package api is the HTTP client for the Murrasil backend.
//
// Every method follows the same failure contract: on transport failure,
// non-2xx status, or undecodable body it returns nil (the cause goes to the
// log, never to the caller). Callers treat nil as "operation failed" and
// must not mutate any state from it. Application-level failure is different:
// a 200 body whose envelope status is not "success" still comes back and is
// checked at the call site.
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/murrasil/console/internal/logging"
)

const requestTimeout = 30 * time.Second

// Client talks to the backend REST API.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

// New creates a Client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(requestTimeout).
			SetHeader("Content-Type", "application/json"),
		// Keeps bursts of queue reloads and count refreshes polite.
		// Generous enough that interactive use never queues behind it.
		limiter: rate.NewLimiter(rate.Every(50*time.Millisecond), 10),
	}
}

// do performs a request and decodes the 2xx body into out.
// Returns false on any failure; out is only valid when it returns true.
func (c *Client) do(ctx context.Context, method, path string, body, out any) bool {
	if err := c.limiter.Wait(ctx); err != nil {
		logging.Error("api rate wait", "path", path, "error", err)
		return false
	}

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		logging.Error("api request failed", "method", method, "path", path, "error", err)
		return false
	}
	if !resp.IsSuccess() {
		logging.Error("api request rejected", "method", method, "path", path, "status", resp.StatusCode())
		return false
	}
	return true
}

// ListNews returns one page of the moderation queue for a status.
// Returns nil on failure.
func (c *Client) ListNews(ctx context.Context, status Status, page, limit int) *ListResponse {
	path := fmt.Sprintf("/api/news?status=%s&page=%d&limit=%d", status, page, limit)
	var out ListResponse
	if !c.do(ctx, resty.MethodGet, path, nil, &out) {
		return nil
	}
	return &out
}

// GetNews returns a single item by id. Returns nil on failure.
func (c *Client) GetNews(ctx context.Context, id string) *NewsItem {
	var out NewsItem
	if !c.do(ctx, resty.MethodGet, "/api/news/"+id, nil, &out) {
		return nil
	}
	return &out
}

// Counts returns the per-tab totals. Returns nil on failure.
func (c *Client) Counts(ctx context.Context) *Counts {
	var out Counts
	if !c.do(ctx, resty.MethodGet, "/api/news/counts", nil, &out) {
		return nil
	}
	return &out
}

// Approve asks the backend to approve an item and generate its article.
// Returns nil on failure.
func (c *Client) Approve(ctx context.Context, id string) *ApproveResponse {
	var out ApproveResponse
	if !c.do(ctx, resty.MethodPost, "/api/news/"+id+"/approve", nil, &out) {
		return nil
	}
	return &out
}

// Reject marks an item rejected. Returns nil on failure.
func (c *Client) Reject(ctx context.Context, id string) *StatusResponse {
	var out StatusResponse
	if !c.do(ctx, resty.MethodPost, "/api/news/"+id+"/reject", nil, &out) {
		return nil
	}
	return &out
}

// Restore moves a rejected item back to the new queue. Returns nil on failure.
func (c *Client) Restore(ctx context.Context, id string) *StatusResponse {
	var out StatusResponse
	if !c.do(ctx, resty.MethodPost, "/api/news/"+id+"/restore", nil, &out) {
		return nil
	}
	return &out
}

// TriggerFetch runs an immediate ingestion pass. Returns nil on failure.
func (c *Client) TriggerFetch(ctx context.Context) *FetchResponse {
	var out FetchResponse
	if !c.do(ctx, resty.MethodPost, "/api/news/fetch", nil, &out) {
		return nil
	}
	return &out
}

// Settings returns the scheduling settings map. Returns nil on failure.
func (c *Client) Settings(ctx context.Context) map[string]string {
	out := map[string]string{}
	if !c.do(ctx, resty.MethodGet, "/api/settings", nil, &out) {
		return nil
	}
	return out
}

// SaveSettings overwrites settings wholesale. Returns nil on failure.
func (c *Client) SaveSettings(ctx context.Context, updates map[string]string) *StatusResponse {
	var out StatusResponse
	if !c.do(ctx, resty.MethodPost, "/api/settings", updates, &out) {
		return nil
	}
	return &out
}

// Sources returns all configured ingestion sources. Returns nil on failure.
func (c *Client) Sources(ctx context.Context) []Source {
	var out []Source
	if !c.do(ctx, resty.MethodGet, "/api/sources", nil, &out) {
		return nil
	}
	if out == nil {
		out = []Source{}
	}
	return out
}

// AddSource creates a source. Returns nil on failure.
func (c *Client) AddSource(ctx context.Context, name, url string) *StatusResponse {
	var out StatusResponse
	body := map[string]string{"name": name, "url": url}
	if !c.do(ctx, resty.MethodPost, "/api/sources", body, &out) {
		return nil
	}
	return &out
}

// ToggleSource flips a source's enabled flag. Returns nil on failure.
func (c *Client) ToggleSource(ctx context.Context, id, enabled int) *StatusResponse {
	var out StatusResponse
	body := map[string]int{"enabled": enabled}
	if !c.do(ctx, resty.MethodPut, fmt.Sprintf("/api/sources/%d", id), body, &out) {
		return nil
	}
	return &out
}

// DeleteSource removes a source. Returns nil on failure.
func (c *Client) DeleteSource(ctx context.Context, id int) *StatusResponse {
	var out StatusResponse
	if !c.do(ctx, resty.MethodDelete, fmt.Sprintf("/api/sources/%d", id), nil, &out) {
		return nil
	}
	return &out
}
