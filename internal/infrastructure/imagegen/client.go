package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/roomlens/backend/internal/domain"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-image-1"
	maxAttempts    = 3
)

// Config holds image provider configuration parameters.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls the external AI image transformation API. A client built
// without an API key is disabled; callers check Enabled before use so the
// service can run recommendations-only in development.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates an image provider client from the given configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	// Image edits are slow and billed per call; keep outbound pressure low.
	limiter := rate.NewLimiter(rate.Limit(1), 3)

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		apiKey:      strings.TrimSpace(cfg.APIKey),
		baseURL:     baseURL,
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Enabled reports whether the client is configured for outbound calls.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// editRequest is the provider wire format for an image edit job.
type editRequest struct {
	Model    string  `json:"model"`
	Prompt   string  `json:"prompt"`
	ImageURL string  `json:"image_url,omitempty"`
	ImageB64 string  `json:"image_b64,omitempty"`
	Strength float64 `json:"strength"`
	Size     string  `json:"size"`
	N        int     `json:"n"`
}

// editResponse is the provider response envelope.
type editResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		URL     string `json:"url,omitempty"`
		B64JSON string `json:"b64_json,omitempty"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Transform submits one image edit job and returns the transformed image.
// Transient failures are retried with exponential backoff.
func (c *Client) Transform(ctx context.Context, req domain.TransformRequest) (*domain.TransformResult, error) {
	if !c.Enabled() {
		return nil, domain.ErrProviderDisabled
	}
	if req.Prompt == "" || (req.ImageURL == "" && req.ImageData == "") {
		return nil, domain.ErrInvalidRequest
	}

	body, err := json.Marshal(editRequest{
		Model:    c.model,
		Prompt:   req.Prompt,
		ImageURL: req.ImageURL,
		ImageB64: req.ImageData,
		Strength: req.Strength,
		Size:     "1024x1024",
		N:        1,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		result, retryable, err := c.doEdit(ctx, body)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}

		if c.debug {
			logrus.Debugf("[IMAGEGEN] attempt %d failed: %v", attempt, err)
		}
		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(exponentialBackoff(attempt)):
			}
		}
	}

	return nil, lastErr
}

// doEdit executes a single edit request. The second return value reports
// whether the failure is worth retrying.
func (c *Client) doEdit(ctx context.Context, body []byte) (*domain.TransformResult, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images/edits", bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("User-Agent", "RoomLens/1.0")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		// Client errors other than rate limiting will not improve on retry.
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, fmt.Errorf("%w: status %d: %s", domain.ErrProviderFailure, resp.StatusCode, truncate(respBody, 200))
	}

	var parsed editResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, false, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrProviderFailure, parsed.Error.Message)
	}
	if len(parsed.Data) == 0 {
		return nil, false, fmt.Errorf("%w: empty response", domain.ErrProviderFailure)
	}

	return &domain.TransformResult{
		URL:       parsed.Data[0].URL,
		ImageData: parsed.Data[0].B64JSON,
		Model:     c.model,
	}, false, nil
}

// exponentialBackoff returns the delay before the next retry attempt.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
