package impl

import (
	"context"
	"log/slog"

	deliverycontext "appname/internal/delivery/context"
	"appname/internal/domain/service"
)

// eventTracker emits product events. Tracking failures never fail the caller.
type eventTracker struct {
	client service.AnalyticsClient
	logger *slog.Logger
}

func (t eventTracker) track(ctx context.Context, distinctID, event string, properties map[string]string) {
	if t.client == nil {
		return
	}

	if err := t.client.Capture(ctx, distinctID, event, properties); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, t.logger).Warn("Failed to track event",
			slog.String("event", event),
			slog.String("distinct_id", distinctID),
			slog.Any("error", err),
		)
	}
}
