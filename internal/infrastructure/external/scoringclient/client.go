// Package scoringclient is the HTTP sink for game results when scoring runs
// as a separate deployment. It plugs into the recorder dispatcher, so every
// failure here is already on the fire-and-forget side of the wager path.
package scoringclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/vegaslabs/casinocore/internal/domain"
)

const defaultTimeout = 5 * time.Second

// Client posts game results to a remote scoring service.
type Client struct {
	baseURL string
	client  *retryablehttp.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 1
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 500 * time.Millisecond
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil

	return &Client{baseURL: baseURL, client: rc}
}

// Record posts one result. The dispatcher owns retries and logging; this
// just reports success or failure.
func (c *Client) Record(ctx context.Context, result *domain.GameResult) error {
	body, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal game result: %w", err)
	}

	url := c.baseURL + "/api/v1/scoring/game-result"
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("scoring service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("scoring service returned status %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
