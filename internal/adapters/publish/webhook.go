package publish

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/pkg/metrics"
)

const (
	// DefaultWebhookTimeout bounds a single webhook request.
	DefaultWebhookTimeout = 10 * time.Second

	// maxAttempts counts the first try plus rate-limited retries.
	maxAttempts = 3

	defaultRetryWait = time.Second
	maxRetryWait     = time.Minute
)

// WebhookPayload is the JSON body posted for one list.
type WebhookPayload struct {
	ID       string               `json:"id"`
	RunID    string               `json:"run_id"`
	Date     string               `json:"date"`
	Kind     model.ListKind       `json:"kind"`
	Count    int                  `json:"count"`
	Pitchers []model.PitcherBoost `json:"pitchers,omitempty"`
	Hitters  []model.BatterTarget `json:"hitters,omitempty"`
}

// NewWebhookPayload maps a publication onto the wire body.
func NewWebhookPayload(p *model.Publication) WebhookPayload {
	return WebhookPayload{
		ID:       p.ID.String(),
		RunID:    p.RunID.String(),
		Date:     p.Date,
		Kind:     p.Kind,
		Count:    p.Len(),
		Pitchers: p.Pitchers,
		Hitters:  p.Hitters,
	}
}

// WebhookSink posts publications as JSON to a webhook URL.
type WebhookSink struct {
	url        string
	httpClient *http.Client
}

// WebhookOption configures a WebhookSink.
type WebhookOption func(*WebhookSink)

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) WebhookOption {
	return func(s *WebhookSink) {
		if d > 0 {
			s.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(s *WebhookSink) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// NewWebhookSink creates a sink posting to url.
func NewWebhookSink(url string, opts ...WebhookOption) *WebhookSink {
	s := &WebhookSink{
		url:        url,
		httpClient: &http.Client{Timeout: DefaultWebhookTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Publish posts p, retrying when the endpoint rate-limits.
func (s *WebhookSink) Publish(ctx context.Context, p model.Publication) error { //nolint:gocritic // Sink contract
	data, err := json.Marshal(NewWebhookPayload(&p))
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrPublish, err)
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		wait, err := s.post(ctx, data)
		if err == nil {
			return nil
		}
		if wait == 0 || attempt == maxAttempts {
			return err
		}

		metrics.RecordPublishRetry()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("%w: %w after %d attempts", ErrPublish, ErrRateLimited, maxAttempts)
}

// post sends one request. A non-zero wait means the caller may retry.
func (s *WebhookSink) post(ctx context.Context, data []byte) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("%w: create request: %v", ErrPublish, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: request: %w", ErrPublish, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return 0, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return retryAfter(resp.Header.Get("Retry-After")),
			fmt.Errorf("%w: %w", ErrPublish, ErrRateLimited)
	default:
		return 0, fmt.Errorf("%w: webhook returned status %d", ErrPublish, resp.StatusCode)
	}
}

// retryAfter parses a Retry-After header in seconds, falling back to one
// second and capping at a minute.
func retryAfter(h string) time.Duration {
	wait := defaultRetryWait
	if h != "" {
		if secs, err := strconv.ParseFloat(h, 64); err == nil && secs > 0 {
			wait = time.Duration(secs * float64(time.Second))
		}
	}
	return min(wait, maxRetryWait)
}
