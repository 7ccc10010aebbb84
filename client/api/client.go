package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBase is the versioned API root.
const DefaultBase = "/api/v1"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiBase    string
}

// New creates a client for the server at baseURL (scheme and host).
func New(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/"), apiBase: DefaultBase}
}

// Endpoint resolves endpoint against the API root. Legacy /api/ and already
// versioned /api/v1/ prefixes are stripped before joining.
func (c *Client) Endpoint(endpoint string) string {
	switch {
	case endpoint == c.apiBase:
		endpoint = "/"
	case strings.HasPrefix(endpoint, c.apiBase+"/"):
		endpoint = strings.TrimPrefix(endpoint, c.apiBase)
	case strings.HasPrefix(endpoint, "/api/"):
		endpoint = strings.TrimPrefix(endpoint, "/api")
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.apiBase + endpoint
}

func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.Do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) Post(ctx context.Context, endpoint string, data, out any) error {
	return c.Do(ctx, http.MethodPost, endpoint, data, out)
}

func (c *Client) Put(ctx context.Context, endpoint string, data, out any) error {
	return c.Do(ctx, http.MethodPut, endpoint, data, out)
}

func (c *Client) Delete(ctx context.Context, endpoint string, out any) error {
	return c.Do(ctx, http.MethodDelete, endpoint, nil, out)
}

// Do sends a JSON request and decodes a JSON response into out (when not nil).
// Non-2xx responses yield *Error.
func (c *Client) Do(ctx context.Context, method, endpoint string, data, out any) error {
	path := c.Endpoint(endpoint)
	var body io.Reader
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Method: method, Endpoint: path, StatusCode: resp.StatusCode, Detail: detail(resp.StatusCode, payload)}
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err = json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// StatusCode returns the HTTP status of an *Error, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
