package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dhootha/present"
	"dhootha/types"
)

// DashboardClient is a thin HTTP client for the news API
type DashboardClient struct {
	baseURL string
	client  *http.Client
}

// NewDashboardClient creates a client for the API at baseURL
func NewDashboardClient(baseURL string) *DashboardClient {
	return &DashboardClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// retrieval may include a feed fetch and translation
		client: &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *DashboardClient) BaseURL() string {
	return c.baseURL
}

// Health checks that the API is reachable
func (c *DashboardClient) Health() error {
	resp, err := c.client.Get(c.baseURL + "/api/health")
	if err != nil {
		return fmt.Errorf("failed to reach api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

// Fetch runs a retrieval on the API
func (c *DashboardClient) Fetch(req types.FetchRequest) (*present.FetchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+"/api/news/fetch", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%s", apiErr.Error)
		}
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var out present.FetchResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}
