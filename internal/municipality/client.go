package municipality

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client fetches the municipality list from the upstream reference API
// (geoapi.pt serves a plain JSON array of municipality names).
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchNames(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/municipio", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch municipalities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch municipalities: unexpected status %d", resp.StatusCode)
	}

	var names []string
	if err = json.NewDecoder(resp.Body).Decode(&names); err != nil {
		return nil, fmt.Errorf("decode municipalities: %w", err)
	}

	return names, nil
}
