// Package weather implements the weather-lookup skill backed by the
// wttr.in JSON endpoint.
package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"teoskills/internal/log"
)

const defaultBaseURL = "http://wttr.in"

type request struct {
	Location string `json:"location"`
	Unit     string `json:"unit"`
}

type condition struct {
	TempC       string `json:"temp_C"`
	TempF       string `json:"temp_F"`
	FeelsLikeC  string `json:"FeelsLikeC"`
	FeelsLikeF  string `json:"FeelsLikeF"`
	WeatherDesc []struct {
		Value string `json:"value"`
	} `json:"weatherDesc"`
}

type wttrResponse struct {
	CurrentCondition []condition `json:"current_condition"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(logger *log.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.WithComponent(log.ComponentHTTP),
	}
}

// Run executes one weather invocation and returns the output line and
// process exit code. Upstream failures are reported on stdout with a
// zero exit so the caller still receives a payload.
func (c *Client) Run(rawArg string) (string, int) {
	var req request
	if err := json.Unmarshal([]byte(rawArg), &req); err != nil {
		return "Error: Invalid JSON argument", 1
	}
	if req.Location == "" {
		return "Error: location is required", 1
	}
	unit := req.Unit
	if unit == "" {
		unit = "celsius"
	}

	endpoint := fmt.Sprintf("%s/%s?format=j1", c.baseURL, url.PathEscape(req.Location))
	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		c.logger.Warn("weather request failed", log.FieldError, err)
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
	var data wttrResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Sprintf("Error making request: %v", err), 0
	}
	if len(data.CurrentCondition) == 0 {
		return "No current weather data available.", 0
	}

	current := data.CurrentCondition[0]
	temp, feelsLike := current.TempC, current.FeelsLikeC
	if unit == "fahrenheit" {
		temp, feelsLike = current.TempF, current.FeelsLikeF
	}

	var desc []string
	for _, item := range current.WeatherDesc {
		desc = append(desc, item.Value)
	}
	weatherDesc := strings.TrimSpace(strings.Join(desc, "\n"))

	return fmt.Sprintf("The current weather in %s is %s and temperature is %s°%s (feels like %s°%s).",
		req.Location, weatherDesc, temp, unit, feelsLike, unit), 0
}
