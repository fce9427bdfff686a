package service

import (
	"context"
	"time"
)

// AnalyticsEvent is a tracked event in the form it is streamed to downstream consumers.
type AnalyticsEvent struct {
	Event      string         `json:"event"`
	DistinctID string         `json:"distinct_id"`
	Properties map[string]any `json:"properties,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	RequestID  string         `json:"request_id,omitempty"`
}

// EventPublisher streams analytics events to a message topic.
type EventPublisher interface {
	// Publish blocks until the broker has accepted the event.
	Publish(ctx context.Context, event *AnalyticsEvent) error

	Close() error
}
