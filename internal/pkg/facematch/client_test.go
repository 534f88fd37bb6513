package facematch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realsteps/presence-backend-go/internal/config"
	"github.com/realsteps/presence-backend-go/internal/domain/biometric"
)

func testClient(baseURL string) *Client {
	return NewClient(config.MatcherConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: time.Second,
	}, nil)
}

func TestClient_Compare_Matched(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/compare", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"matched": true}`))
	}))
	defer server.Close()

	matched, err := testClient(server.URL).Compare(context.Background(), []byte("probe"), []byte("ref"))

	require.NoError(t, err)
	assert.True(t, matched)
}

func TestClient_Compare_NoFeaturesExtracted(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"code": "NO_FEATURES_EXTRACTED", "message": "no face detected"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Compare(context.Background(), []byte("probe"), []byte("ref"))

	assert.ErrorIs(t, err, biometric.ErrNoBiometricFeatures)
}

func TestClient_Compare_ServerErrorWithNonJSONBody(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("<html><body>503 Service Unavailable</body></html>"))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Compare(context.Background(), []byte("probe"), []byte("ref"))

	assert.ErrorIs(t, err, biometric.ErrMatcherUnavailable)
}

func TestClient_Compare_ClientErrorStatus(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": "INVALID_SAMPLE", "message": "probe is empty"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Compare(context.Background(), []byte("probe"), []byte("ref"))

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "INVALID_SAMPLE", apiErr.Code)
}

func TestClient_Compare_Timeout(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"matched": true}`))
	}))
	defer server.Close()

	client := NewClient(config.MatcherConfig{
		BaseURL: server.URL,
		Timeout: 20 * time.Millisecond,
	}, nil)

	_, err := client.Compare(context.Background(), []byte("probe"), []byte("ref"))

	assert.ErrorIs(t, err, biometric.ErrMatcherUnavailable)
}
