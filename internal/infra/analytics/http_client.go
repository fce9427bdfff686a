package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "appname/internal/delivery/context"
	"appname/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	capturePath   = "/capture/"
	identifyEvent = "$identify"
)

// httpClient sends every event synchronously to the PostHog capture endpoint,
// so transport and server failures are returned from the call itself.
type httpClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// captureRequest is the body accepted by the capture endpoint.
type captureRequest struct {
	APIKey     string         `json:"api_key"`
	Event      string         `json:"event"`
	DistinctID string         `json:"distinct_id"`
	Properties map[string]any `json:"properties,omitempty"`
	Timestamp  string         `json:"timestamp"`
}

// NewHTTPClient creates a synchronous client posting to host's capture endpoint.
func NewHTTPClient(host, apiKey string, timeout time.Duration, logger *slog.Logger) service.AnalyticsClient {
	return &httpClient{
		endpoint: strings.TrimRight(host, "/") + capturePath,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
		now:    time.Now,
	}
}

func (c *httpClient) Capture(ctx context.Context, distinctID, event string, properties map[string]string) error {
	return c.send(ctx, captureRequest{
		Event:      event,
		DistinctID: distinctID,
		Properties: withScope(ctx, properties),
	})
}

func (c *httpClient) Identify(ctx context.Context, distinctID string, traits map[string]string) error {
	set := make(map[string]any, len(traits))
	for k, v := range traits {
		set[k] = v
	}
	props := withScope(ctx, nil)
	props["$set"] = set

	return c.send(ctx, captureRequest{
		Event:      identifyEvent,
		DistinctID: distinctID,
		Properties: props,
	})
}

func (c *httpClient) OpenScope(ctx context.Context) (context.Context, func()) {
	return newScope(ctx, func(id string) {
		c.logger.Debug("[HTTPAnalytics] Scope released", slog.String("scope_id", id))
	})
}

// Close releases idle connections.
func (c *httpClient) Close() error {
	c.httpClient.CloseIdleConnections()

	return nil
}

func (c *httpClient) send(ctx context.Context, payload captureRequest) error {
	payload.APIKey = c.apiKey
	payload.Timestamp = c.now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("analytics endpoint returned non-success status: %d", resp.StatusCode)
	}

	c.logger.Debug("[HTTPAnalytics] Event sent",
		slog.String("event", payload.Event),
		slog.String("distinct_id", payload.DistinctID),
	)

	return nil
}
