package service

import "context"

// AnalyticsClient sends product events to an external tracking service.
// Every call may fail; callers decide whether a failure matters to them.
type AnalyticsClient interface {
	// Capture records a named event attributed to distinctID.
	Capture(ctx context.Context, distinctID, event string, properties map[string]string) error

	// Identify associates profile traits with distinctID.
	Identify(ctx context.Context, distinctID string, traits map[string]string) error

	// OpenScope starts a tracking scope. Calls made with the returned context are
	// grouped under one logical session downstream. The release function must be
	// called exactly once, whatever the outcome of the calls made inside.
	OpenScope(ctx context.Context) (context.Context, func())

	// Close flushes pending events and releases the client.
	Close() error
}
