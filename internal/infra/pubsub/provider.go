// Package pubsub publishes analytics events to Google Cloud Pub/Sub, or to a
// local push endpoint during development.
package pubsub

import (
	"context"
	"log/slog"

	"appname/config"
	"appname/internal/domain/service"

	"github.com/pkg/errors"
)

// NewEventPublisher creates an EventPublisher based on configuration.
// A local endpoint takes precedence over the Google project and topic.
func NewEventPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil {
		return nil, errors.New("pubsub configuration is required")
	}

	if cfg.LocalEndpoint != "" {
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	if cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google pubsub")
	}
	if cfg.TopicID == "" {
		return nil, errors.New("topic ID is required for google pubsub")
	}
	logger.Info("Using Google Pub/Sub publisher",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic_id", cfg.TopicID),
	)

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

// attributes returns the message attributes used for subscription filtering and tracing.
func attributes(event *service.AnalyticsEvent) map[string]string {
	attrs := map[string]string{
		"event":       event.Event,
		"distinct_id": event.DistinctID,
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return attrs
}
