package analytics

import (
	"context"
	"log/slog"

	"appname/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/posthog/posthog-go"
)

// posthogClient hands events to the PostHog SDK, which batches and sends them
// in the background. Only enqueue failures are visible to callers.
type posthogClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewPostHogClient creates a client backed by the PostHog SDK.
func NewPostHogClient(apiKey string, cfg posthog.Config, logger *slog.Logger) (service.AnalyticsClient, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required for posthog provider")
	}
	cfg.Callback = &deliveryLogger{logger: logger}

	client, err := posthog.NewWithConfig(apiKey, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create posthog client")
	}

	return &posthogClient{client: client, logger: logger}, nil
}

func (c *posthogClient) Capture(ctx context.Context, distinctID, event string, properties map[string]string) error {
	props := posthog.NewProperties()
	for k, v := range withScope(ctx, properties) {
		props.Set(k, v)
	}

	if err := c.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: props,
	}); err != nil {
		return errors.Wrapf(err, "failed to enqueue event %s", event)
	}

	return nil
}

func (c *posthogClient) Identify(ctx context.Context, distinctID string, traits map[string]string) error {
	props := posthog.NewProperties()
	for k, v := range traits {
		props.Set(k, v)
	}
	if id, ok := ScopeID(ctx); ok {
		props.Set(SessionProperty, id)
	}

	if err := c.client.Enqueue(posthog.Identify{
		DistinctId: distinctID,
		Properties: props,
	}); err != nil {
		return errors.Wrapf(err, "failed to enqueue identify for %s", distinctID)
	}

	return nil
}

func (c *posthogClient) OpenScope(ctx context.Context) (context.Context, func()) {
	return newScope(ctx, func(id string) {
		c.logger.Debug("[PostHog] Scope released", slog.String("scope_id", id))
	})
}

// Close flushes the queued events and stops the SDK.
func (c *posthogClient) Close() error {
	return errors.WithStack(c.client.Close())
}

// deliveryLogger reports the outcome of background batch uploads.
type deliveryLogger struct {
	logger *slog.Logger
}

func (l *deliveryLogger) Success(msg posthog.APIMessage) {
	l.logger.Debug("[PostHog] Message delivered", slog.Any("message", msg))
}

func (l *deliveryLogger) Failure(msg posthog.APIMessage, err error) {
	l.logger.Warn("[PostHog] Message delivery failed",
		slog.Any("message", msg),
		slog.Any("error", err),
	)
}
