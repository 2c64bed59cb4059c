package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dhootha/types"
)

// ErrMissingAPIKey is returned when no API key has been configured
var ErrMissingAPIKey = errors.New("news API key is not configured (set NEWS_API_KEY)")

// EverythingResponse is the JSON body of a successful search
type EverythingResponse struct {
	Status       string          `json:"status"`
	TotalResults int             `json:"totalResults"`
	Articles     []types.Article `json:"articles"`
}

// APIError is an error body returned by the news API
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("news API returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("news API returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Client calls the news search API. It holds only immutable configuration
// and is safe to share or to create per request.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new news API client
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Everything runs a single "everything" search
func (c *Client) Everything(ctx context.Context, q EverythingQuery) (*EverythingResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint := fmt.Sprintf("%s/everything?%s", c.baseURL, q.Values().Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Code = ""
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return nil, apiErr
	}

	var out EverythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Status == "error" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "status error without details"}
	}

	return &out, nil
}
