package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError represents an error response from the API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) String() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Do performs an HTTP request
func (c *Client) Do(method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Check for error responses
	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			return fmt.Errorf("%s", errResp.Error.String())
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	// Parse successful response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Get performs a GET request
func (c *Client) Get(path string, result any) error {
	return c.Do(http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(path string, body, result any) error {
	return c.Do(http.MethodPost, path, body, result)
}

// Turn sends one conversational turn in the voice platform's envelope
func (c *Client) Turn(userID, requestType, intent string, attrs map[string]any) (TurnResult, error) {
	body := turnRequest{
		Version: "1.0",
		Session: turnSession{
			New:        attrs == nil,
			SessionID:  "cli",
			User:       turnUser{UserID: userID},
			Attributes: attrs,
		},
		Request: turnBody{
			Type:      requestType,
			RequestID: fmt.Sprintf("cli-%d", time.Now().UnixNano()),
		},
	}
	if intent != "" {
		body.Request.Intent = &turnIntent{Name: intent}
	}

	var result TurnResult
	if err := c.Post("/api/v1/skill", body, &result); err != nil {
		return TurnResult{}, err
	}
	return result, nil
}

// Request envelope (matches API)
type turnRequest struct {
	Version string      `json:"version"`
	Session turnSession `json:"session"`
	Request turnBody    `json:"request"`
}

type turnSession struct {
	New        bool           `json:"new"`
	SessionID  string         `json:"sessionId"`
	User       turnUser       `json:"user"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type turnUser struct {
	UserID string `json:"userId"`
}

type turnBody struct {
	Type      string      `json:"type"`
	RequestID string      `json:"requestId"`
	Intent    *turnIntent `json:"intent,omitempty"`
}

type turnIntent struct {
	Name string `json:"name"`
}

// Health fetches the health report. A degraded server answers 503 with a
// report body, which is returned alongside the status.
func (c *Client) Health() (HealthResult, int, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/api/v1/health")
	if err != nil {
		return HealthResult{}, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var result HealthResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return HealthResult{}, resp.StatusCode, fmt.Errorf("HTTP %d: failed to parse response: %w", resp.StatusCode, err)
	}
	return result, resp.StatusCode, nil
}
