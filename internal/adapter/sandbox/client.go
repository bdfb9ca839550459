package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

var _ secondary.CodeRunner = (*Client)(nil)

// Client talks to the remote execution sandbox over HTTP. One Run is one
// POST; there are no retries and no caching, so every call reflects the
// sandbox's live behavior.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     primary.Logger
}

// runRequest is the sandbox wire contract
type runRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Input    string `json:"input"`
}

// NewClient creates a sandbox client. The configured timeout bounds each
// individual call.
func NewClient(cfg *config.SandboxConfig, logger primary.Logger) *Client {
	return &Client{
		baseURL: cfg.Url,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// Run executes code with the given stdin. Transport failures, timeouts and
// non-success responses all come back as an outcome with Error set and an
// empty Output; the caller treats every failure uniformly.
func (c *Client) Run(ctx context.Context, language, code, input string) *domain.ExecutionOutcome {
	body, err := json.Marshal(runRequest{
		Language: language,
		Code:     code,
		Input:    input,
	})
	if err != nil {
		return c.failure(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run", bytes.NewReader(body))
	if err != nil {
		return c.failure(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failure(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(fmt.Errorf("sandbox returned status %d", resp.StatusCode))
	}

	var outcome domain.ExecutionOutcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return c.failure(err)
	}

	// The sandbox may report a failure in-band; never let it look like a
	// success as well.
	if outcome.Error != "" {
		outcome.Output = ""
	}

	return &outcome
}

func (c *Client) failure(err error) *domain.ExecutionOutcome {
	c.logger.Warn("Sandbox call failed", "error", err)
	return &domain.ExecutionOutcome{
		Error: fmt.Sprintf("failed to execute code: %v", err),
	}
}
