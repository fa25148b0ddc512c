package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gamelog/internal/client/models"

	"github.com/goccy/go-json"
)

// HTTPClient implements Client against the journal REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewHTTPClient returns a gateway for the API rooted at baseURL. The timeout
// applies to every request except Ping, whose callers pass their own short
// context deadline.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error { return nil }

func (c *HTTPClient) SetToken(token string) { c.token = token }

// contentEnvelope is the {"content": {...}} wrapper the backend puts around
// single-object responses.
type contentEnvelope[T any] struct {
	Content T `json:"content"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}

	var out contentEnvelope[struct {
		Token string `json:"token"`
	}]
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return "", err
	}

	c.token = out.Content.Token
	return out.Content.Token, nil
}

// Ping probes GET /user, the cheapest authenticated endpoint the backend
// offers. Any 2xx means the server is awake.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/user", nil, nil)
}

func (c *HTTPClient) CreateEntry(ctx context.Context, p models.EntryPayload) (*RemoteEntry, error) {
	var out contentEnvelope[RemoteEntry]
	if err := c.do(ctx, http.MethodPost, "/entries", p, &out); err != nil {
		return nil, err
	}
	return &out.Content, nil
}

func (c *HTTPClient) UpdateEntry(ctx context.Context, remoteID string, p models.EntryPayload) (*RemoteEntry, error) {
	var out contentEnvelope[RemoteEntry]
	if err := c.do(ctx, http.MethodPatch, "/entries/"+url.PathEscape(remoteID), p, &out); err != nil {
		return nil, err
	}
	return &out.Content, nil
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, remoteID string) error {
	return c.do(ctx, http.MethodDelete, "/entries/"+url.PathEscape(remoteID), nil, nil)
}

func (c *HTTPClient) ListEntries(ctx context.Context, q ListQuery) (*ListResult, error) {
	params := url.Values{}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Cursor != "" {
		params.Set("cursor", q.Cursor)
	}
	if q.Title != "" {
		params.Set("title", q.Title)
	}
	if q.Platform != "" {
		params.Set("platform", q.Platform)
	}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	if q.Rating != nil {
		params.Set("rating", strconv.Itoa(*q.Rating))
	}
	if q.StartDate != "" {
		params.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("endDate", q.EndDate)
	}

	path := "/entries"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out ListResult
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request: marshal the body, attach the bearer token, map
// non-2xx statuses to typed errors and decode the response into out (if
// non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, readErrorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// readErrorMessage pulls a human-readable message out of an error body,
// accepting either {"message": "..."} or plain text.
func readErrorMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(b) == 0 {
		return ""
	}

	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(b))
}
