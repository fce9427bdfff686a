package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"appname/config"
	"appname/internal/domain/constants"

	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newProviderParams(t *testing.T, cfg *config.AnalyticsConfig) (ClientParams, *fxtest.Lifecycle) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)

	return ClientParams{
		Lc:     lc,
		Config: &config.Config{Analytics: cfg},
		Logger: newDiscardLogger(),
	}, lc
}

func TestNewAnalyticsClient_Disabled(t *testing.T) {
	params, _ := newProviderParams(t, nil)

	client, err := NewAnalyticsClient(params)
	require.NoError(t, err)
	assert.IsType(t, &noopClient{}, client)

	ctx, release := client.OpenScope(context.Background())
	defer release()
	assert.NoError(t, client.Capture(ctx, "id", "event", nil))
	assert.NoError(t, client.Identify(ctx, "id", nil))
}

func TestNewAnalyticsClient_HTTP(t *testing.T) {
	params, lc := newProviderParams(t, &config.AnalyticsConfig{
		Provider: constants.AnalyticsProviderHTTP,
		Host:     "http://127.0.0.1:1",
		Timeout:  time.Second,
	})

	client, err := NewAnalyticsClient(params)
	require.NoError(t, err)
	assert.IsType(t, &httpClient{}, client)

	lc.RequireStart().RequireStop()
}

func TestNewAnalyticsClient_HTTPRequiresHost(t *testing.T) {
	params, _ := newProviderParams(t, &config.AnalyticsConfig{Provider: constants.AnalyticsProviderHTTP})

	_, err := NewAnalyticsClient(params)
	assert.Error(t, err)
}

func TestNewAnalyticsClient_UnknownProvider(t *testing.T) {
	params, _ := newProviderParams(t, &config.AnalyticsConfig{Provider: "segment"})

	_, err := NewAnalyticsClient(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown analytics provider")
}

func TestNewAnalyticsClient_PostHogRequiresAPIKey(t *testing.T) {
	params, _ := newProviderParams(t, &config.AnalyticsConfig{Provider: constants.AnalyticsProviderPostHog})

	_, err := NewAnalyticsClient(params)
	assert.Error(t, err)
}

func TestPostHogClient_FlushesOnClose(t *testing.T) {
	var batches atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/batch/" {
			batches.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewPostHogClient("phc_test", posthog.Config{
		Endpoint:  server.URL,
		Interval:  time.Hour,
		BatchSize: 100,
	}, newDiscardLogger())
	require.NoError(t, err)

	ctx, release := client.OpenScope(context.Background())
	require.NoError(t, client.Identify(ctx, "test-user-456", map[string]string{"name": "Test User"}))
	require.NoError(t, client.Capture(ctx, "test-user-456", "context_test_event", map[string]string{"status": "processed"}))
	release()

	require.NoError(t, client.Close())
	assert.Positive(t, batches.Load())
}

func TestNewAnalyticsClient_PubSubLocal(t *testing.T) {
	var pushes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pushes.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	params, lc := newProviderParams(t, &config.AnalyticsConfig{
		Provider: constants.AnalyticsProviderPubSub,
		PubSub:   &config.PubSubConfig{LocalEndpoint: srv.URL},
	})

	client, err := NewAnalyticsClient(params)
	require.NoError(t, err)
	assert.IsType(t, &pubsubClient{}, client)

	lc.RequireStart()
	require.NoError(t, client.Capture(context.Background(), "id", "event", nil))
	lc.RequireStop()

	assert.Equal(t, int32(1), pushes.Load())
}

func TestNewAnalyticsClient_PubSubRequiresConfig(t *testing.T) {
	params, _ := newProviderParams(t, &config.AnalyticsConfig{Provider: constants.AnalyticsProviderPubSub})

	_, err := NewAnalyticsClient(params)
	assert.ErrorContains(t, err, "failed to create event publisher")
}
