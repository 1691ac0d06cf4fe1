// Package github is a minimal client for the user search endpoint of a
// GitHub-compatible REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"ghsearch/internal/domain"
)

// DefaultBaseURL is the public GitHub REST host
const DefaultBaseURL = "https://api.github.com"

// APIError is returned when the remote rejects a request with a non-2xx status
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Client performs user lookups
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client for the given base URL. An empty base URL
// selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  "ghsearch",
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Items []domain.User `json:"items"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// SearchUsers returns the users matching query. An empty query returns no
// users and makes no request.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	return c.search(ctx, query, "")
}

// SearchUsersTagged is SearchUsers with a correlation id sent as X-Request-Id
func (c *Client) SearchUsersTagged(ctx context.Context, query string, id uuid.UUID) ([]domain.User, error) {
	return c.search(ctx, query, id.String())
}

func (c *Client) search(ctx context.Context, query, requestID string) ([]domain.User, error) {
	if query == "" {
		return nil, nil
	}

	endpoint := c.baseURL + "/search/users?" + url.Values{"q": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var er errorResponse
		if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
			apiErr.Message = er.Message
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
			if apiErr.Message == "" {
				apiErr.Message = "request failed"
			}
		}
		log.Printf("Search for %q rejected: %v", query, apiErr)
		return nil, apiErr
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if sr.Items == nil {
		sr.Items = []domain.User{}
	}

	return sr.Items, nil
}

// IsAPIError reports whether err is a remote rejection
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
