package facematch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/realsteps/presence-backend-go/internal/config"
	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
	"github.com/realsteps/presence-backend-go/internal/pkg/metrics"
)

// Client calls the external biometric matching service. It implements
// biometric.Matcher; the comparison algorithm is entirely the remote service's
// concern. Every call is bounded by the configured timeout and surfaces as
// ErrMatcherUnavailable rather than hanging.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewClient(cfg config.MatcherConfig, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		metrics: m,
	}
}

type compareRequest struct {
	Probe     []byte `json:"probe"`
	Reference []byte `json:"reference"`
}

type compareResponse struct {
	Matched bool   `json:"matched"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// APIError represents a non-2xx response from the matcher service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("matcher API error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// Compare implements biometric.Matcher.
func (c *Client) Compare(ctx context.Context, probe []byte, reference []byte) (bool, error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveMatcherLatency(time.Since(start))
	}()

	body, err := json.Marshal(compareRequest{Probe: probe, Reference: reference})
	if err != nil {
		return false, fmt.Errorf("marshal compare request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/compare", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build compare request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport failures alike mean the matcher cannot answer.
		return false, fmt.Errorf("%w: %v", biometric.ErrMatcherUnavailable, err)
	}
	defer resp.Body.Close()

	// On error statuses the body may not be JSON at all (proxies answer with
	// HTML); a failed decode must not hide the status, so result just stays
	// zero-valued and the status branches below decide.
	var result compareResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	switch {
	case resp.StatusCode == http.StatusOK:
		if decodeErr != nil {
			return false, fmt.Errorf("decode compare response: %w", decodeErr)
		}
		return result.Matched, nil
	case resp.StatusCode == http.StatusUnprocessableEntity && result.Code == "NO_FEATURES_EXTRACTED":
		return false, biometric.ErrNoBiometricFeatures
	case resp.StatusCode >= 500:
		return false, fmt.Errorf("%w: %v", biometric.ErrMatcherUnavailable, &APIError{
			StatusCode: resp.StatusCode,
			Code:       result.Code,
			Message:    result.Message,
		})
	default:
		return false, &APIError{
			StatusCode: resp.StatusCode,
			Code:       result.Code,
			Message:    result.Message,
		}
	}
}
