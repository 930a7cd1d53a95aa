// Package engineclient is the HTTP client for a remotely deployed game
// engine service. From the orchestrator's point of view it is just another
// domain.GameEngine; transport failures surface as ENGINE_UNAVAILABLE and an
// exceeded deadline as ENGINE_TIMEOUT, both before any balance mutation.
package engineclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/vegaslabs/casinocore/internal/domain"
)

// DefaultTimeout is the fixed deadline for one engine call.
const DefaultTimeout = 10 * time.Second

// Client implements domain.GameEngine over HTTP.
type Client struct {
	game    domain.Game
	baseURL string
	timeout time.Duration
	client  *retryablehttp.Client
}

// New creates a remote engine client. Retries are kept low: a wager that
// fails transport is safe to retry from the player, not worth hammering a
// dead service for.
func New(game domain.Game, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 1 * time.Second
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil

	return &Client{
		game:    game,
		baseURL: baseURL,
		timeout: timeout,
		client:  rc,
	}
}

// Game returns the game this client resolves.
func (c *Client) Game() domain.Game {
	return c.game
}

// Resolve posts the engine request to the remote service.
func (c *Client) Resolve(ctx context.Context, req domain.EngineRequest) (*domain.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, domain.NewInternalError("Failed to marshal engine request", err)
	}

	url := fmt.Sprintf("%s/api/v1/engine/%s/resolve", c.baseURL, c.game)
	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewInternalError("Failed to create engine request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, domain.NewEngineTimeoutError(string(c.game), err)
		}
		return nil, domain.NewEngineUnavailableError(string(c.game), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewEngineUnavailableError(string(c.game), err)
	}

	if resp.StatusCode != http.StatusOK {
		// Engine-side rejections travel as AppError envelopes so the stable
		// code (INVALID_INPUT, POLICY_FORBIDDEN, INVALID_STATE) survives the
		// wire.
		var envelope domain.ErrorResponse
		if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Error != nil {
			envelope.Error.HTTPStatus = resp.StatusCode
			return nil, envelope.Error
		}
		return nil, domain.NewEngineUnavailableError(
			string(c.game),
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody)),
		)
	}

	var outcome domain.Outcome
	if err := json.Unmarshal(respBody, &outcome); err != nil {
		return nil, domain.NewEngineUnavailableError(string(c.game), fmt.Errorf("failed to decode outcome: %w", err))
	}
	return &outcome, nil
}
