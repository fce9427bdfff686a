package analytics

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "appname/internal/delivery/context"
	"appname/internal/domain/service"

	"github.com/pkg/errors"
)

// pubsubClient streams events to a message topic for downstream pipelines.
// Publish waits for the broker, so failures are returned from the call.
type pubsubClient struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewPubSubClient creates an AnalyticsClient on top of an EventPublisher.
func NewPubSubClient(publisher service.EventPublisher, logger *slog.Logger) service.AnalyticsClient {
	return &pubsubClient{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (c *pubsubClient) Capture(ctx context.Context, distinctID, event string, properties map[string]string) error {
	return c.publish(ctx, event, distinctID, withScope(ctx, properties))
}

func (c *pubsubClient) Identify(ctx context.Context, distinctID string, traits map[string]string) error {
	set := make(map[string]any, len(traits))
	for k, v := range traits {
		set[k] = v
	}
	props := withScope(ctx, nil)
	props["$set"] = set

	return c.publish(ctx, identifyEvent, distinctID, props)
}

func (c *pubsubClient) OpenScope(ctx context.Context) (context.Context, func()) {
	return newScope(ctx, func(id string) {
		c.logger.Debug("[PubSubAnalytics] Scope released", slog.String("scope_id", id))
	})
}

func (c *pubsubClient) Close() error {
	return c.publisher.Close()
}

func (c *pubsubClient) publish(ctx context.Context, event, distinctID string, props map[string]any) error {
	err := c.publisher.Publish(ctx, &service.AnalyticsEvent{
		Event:      event,
		DistinctID: distinctID,
		Properties: props,
		Timestamp:  c.now().UTC(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s", event)
	}

	return nil
}
