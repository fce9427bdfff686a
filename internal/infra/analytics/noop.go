package analytics

import (
	"context"
	"log/slog"
)

// noopClient is used when analytics is disabled.
type noopClient struct {
	logger *slog.Logger
}

func (c *noopClient) Capture(ctx context.Context, distinctID, event string, properties map[string]string) error {
	c.logger.Debug("[NoopAnalytics] Event tracking disabled, skipping",
		slog.String("event", event),
	)

	return nil
}

func (c *noopClient) Identify(ctx context.Context, distinctID string, traits map[string]string) error {
	return nil
}

func (c *noopClient) OpenScope(ctx context.Context) (context.Context, func()) {
	return newScope(ctx, nil)
}

func (c *noopClient) Close() error {
	return nil
}
