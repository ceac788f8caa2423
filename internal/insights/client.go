// Package insights calls the remote text-generation service used for
// narrative summaries. It is best-effort: failures degrade to a placeholder
// and never reach the program-edit or log-commit paths.
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable is returned when the service cannot produce text. Callers
// show Placeholder instead.
var ErrUnavailable = errors.New("insights service unavailable")

// Placeholder is the degraded output shown when the service fails.
const Placeholder = "Insights are currently unavailable."

const (
	maxRetries = 3
	baseDelay  = time.Second
)

type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	delay    time.Duration // initial retry delay, doubled per attempt
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
		delay:    baseDelay,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate asks the service for a completion of prompt. Rate-limit
// responses are retried up to three times, doubling the delay from one
// second; anything else fails immediately with ErrUnavailable.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.endpoint == "" {
		return "", ErrUnavailable
	}

	body, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	delay := c.delay
	for attempt := 0; ; attempt++ {
		text, retry, err := c.once(ctx, body)
		if err == nil {
			return text, nil
		}
		if !retry || attempt >= maxRetries {
			return "", err
		}
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}
}

func (c *Client) once(ctx context.Context, body []byte) (text string, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", true, fmt.Errorf("%w: rate limited", ErrUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out.Text, false, nil
}
