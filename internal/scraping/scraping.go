// Package scraping implements the page-to-markdown skill backed by the
// Jina AI Reader endpoint.
package scraping

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"teoskills/internal/log"
)

const (
	defaultBaseURL = "https://r.jina.ai"
	userAgent      = "Mozilla/5.0 (compatible; TeoSkill/1.0)"
)

type request struct {
	URL string `json:"url"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(logger *log.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.WithComponent(log.ComponentHTTP),
	}
}

// Run executes one scraping invocation and returns the output and
// process exit code. The reader response body is passed through as is.
func (c *Client) Run(rawArg string) (string, int) {
	var req request
	if err := json.Unmarshal([]byte(rawArg), &req); err != nil {
		return "Error: Invalid JSON argument", 1
	}
	if req.URL == "" {
		return "Error: url is required", 1
	}

	httpReq, err := http.NewRequest(http.MethodGet, c.baseURL+"/"+req.URL, nil)
	if err != nil {
		return fmt.Sprintf("Error making request: %v", err), 0
	}
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("scraping request failed", log.FieldError, err)
		return fmt.Sprintf("Error making request: %v", err), 0
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Error response from API: %d", resp.StatusCode), 0
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Error making request: %v", err), 0
	}
	return string(body), 0
}
