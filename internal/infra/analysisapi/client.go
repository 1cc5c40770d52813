package analysisapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/skintrack/skintrack/internal/domain/analysis"
)

const defaultEndpoint = "https://api.skintrack.app/analyze-skin"

// Client posts photos to the hosted analysis function.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(endpoint string) *Client {
	url := strings.TrimSpace(endpoint)
	if url == "" {
		url = defaultEndpoint
	}
	return &Client{
		endpoint: url,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Analyze sends the prepared image and returns the raw analysis document.
func (c *Client) Analyze(ctx context.Context, req analysis.RemoteRequest) (json.RawMessage, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode analysis request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("analysis request error: status=%d message=%s",
			resp.StatusCode, errorMessage(body))
	}

	var envelope struct {
		Analysis json.RawMessage `json:"analysis"`
		Error    string          `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	if envelope.Error != "" {
		return nil, fmt.Errorf("analysis api error: %s", envelope.Error)
	}
	return envelope.Analysis, nil
}

// errorMessage prefers the JSON error field but falls back to the raw body.
func errorMessage(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(body))
}

var _ analysis.RemoteClient = (*Client)(nil)
