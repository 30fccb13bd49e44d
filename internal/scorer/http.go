package scorer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const scorerRequestTimeout = 10 * time.Second

// Client calls an external similarity service over HTTP.
// The service exposes GET {base}/similarity?word1=...&word2=... and
// responds with {"similarity": <float>}.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a scorer client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: scorerRequestTimeout},
	}
}

// Similarity fetches the similarity score for a word pair
func (c *Client) Similarity(ctx context.Context, word1, word2 string) (float64, error) {
	params := url.Values{}
	params.Set("word1", word1)
	params.Set("word2", word2)

	fullURL := c.baseURL + "/similarity?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create scorer request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to reach scorer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	var body struct {
		Similarity float64 `json:"similarity"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode scorer response: %w", err)
	}

	return body.Similarity, nil
}
