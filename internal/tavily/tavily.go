// Package tavily implements the web-search skill backed by the Tavily
// HTTP API. The search and extract argument objects are forwarded to
// the API untouched.
package tavily

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"teoskills/internal/log"
)

const defaultBaseURL = "https://api.tavily.com"

type request struct {
	Action      string          `json:"action"`
	SearchArgs  json.RawMessage `json:"search_args"`
	ExtractArgs json.RawMessage `json:"extract_args"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(apiKey string, logger *log.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.WithComponent(log.ComponentHTTP),
	}
}

// Run executes one invocation and returns the output and process exit
// code. Argument and credential problems exit non-zero; API failures
// are reported on stdout with a zero exit.
func (c *Client) Run(rawArg string) (string, int) {
	var req request
	if err := json.Unmarshal([]byte(rawArg), &req); err != nil {
		return "Error: Invalid JSON argument", 1
	}

	if c.apiKey == "" {
		return "Error: TAVILY_API_KEY environment variable not set in .env file or system environment.", 1
	}
	if req.Action == "" {
		return "Error: Action not found", 1
	}

	switch req.Action {
	case "search":
		if len(req.SearchArgs) == 0 || string(req.SearchArgs) == "null" {
			return "Error: search_args are required for search action.", 1
		}
		return c.call("/search", req.SearchArgs), 0
	case "extract":
		if len(req.ExtractArgs) == 0 || string(req.ExtractArgs) == "null" {
			return "Error: extract_args are required for extract action.", 1
		}
		return c.call("/extract", req.ExtractArgs), 0
	default:
		return fmt.Sprintf("Error: Invalid action '%s'. Must be 'search' or 'extract'.", req.Action), 1
	}
}

func (c *Client) call(endpoint string, payload json.RawMessage) string {
	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Sprintf("Error making request to Tavily API: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("tavily request failed", log.FieldError, err)
		return fmt.Sprintf("Error making request to Tavily API: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Error making request to Tavily API: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Error: Tavily API request failed with status %d: %s", resp.StatusCode, body)
	}
	return string(body)
}
