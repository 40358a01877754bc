package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/glowgen/backend/internal/domain"
)

// Client talks to a locally hosted Ollama instance. It implements
// domain.TextGenerator. Construct it explicitly and inject it; there is no
// package-level instance.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	temperature float64
	rateLimiter *rate.Limiter
	debug       bool
}

// generateRequest is the Ollama /api/generate request body.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

// generateResponse is the subset of the Ollama response we consume.
type generateResponse struct {
	Response string `json:"response"`
}

// maxAttempts bounds retries of transient failures.
const maxAttempts = 3

// NewClient creates a new Ollama client. Local inference is slow, so the
// limiter only guards against hammering a busy instance from concurrent
// workflow runs.
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		model:       model,
		temperature: 0.7,
		rateLimiter: rate.NewLimiter(rate.Limit(2), 4),
		debug:       false,
	}
}

// SetDebug toggles per-request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Generate sends a prompt to Ollama and returns the generated text.
// Transient failures are retried up to 3 times with backoff.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: c.temperature,
			NumPredict:  maxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/generate", c.baseURL)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter error: %w", err)
		}

		text, retryable, err := c.doGenerate(ctx, reqURL, payload)
		if err == nil {
			return text, nil
		}

		lastErr = err
		if c.debug {
			log.Printf("[OLLAMA] Request error (attempt %d): %v", attempt, err)
		}
		if !retryable || attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(exponentialBackoff(attempt)):
		}
	}

	return "", lastErr
}

// doGenerate performs one request. The bool reports whether the failure is
// worth retrying.
func (c *Client) doGenerate(ctx context.Context, reqURL string, payload []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "GlowGen/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", domain.ErrOllamaAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("%w: reading body: %v", domain.ErrOllamaAPIFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= http.StatusInternalServerError
		return "", retryable, fmt.Errorf("%w: status %d: %s", domain.ErrOllamaAPIFailure, resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", false, fmt.Errorf("failed to decode response: %w", err)
	}

	if strings.TrimSpace(genResp.Response) == "" {
		return "", false, fmt.Errorf("%w: model %s returned empty output", domain.ErrGenerationFailed, c.model)
	}

	if c.debug {
		log.Printf("[OLLAMA] Generated %d bytes for model %s", len(genResp.Response), c.model)
	}

	return genResp.Response, false, nil
}

// exponentialBackoff returns the wait before the next retry attempt.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}
