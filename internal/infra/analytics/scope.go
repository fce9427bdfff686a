// Package analytics provides the product event tracking clients.
package analytics

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// SessionProperty is the event property that groups the events of one scope.
const SessionProperty = "$session_id"

type scopeKey struct{}

// newScope returns a context carrying a fresh scope ID and a release function
// that is safe to call more than once.
func newScope(ctx context.Context, onRelease func(id string)) (context.Context, func()) {
	id := uuid.NewString()
	var once sync.Once

	return context.WithValue(ctx, scopeKey{}, id), func() {
		once.Do(func() {
			if onRelease != nil {
				onRelease(id)
			}
		})
	}
}

// ScopeID returns the ID of the scope ctx was opened in.
func ScopeID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(scopeKey{}).(string)
	return id, ok && id != ""
}

// withScope copies properties and tags them with the scope ID of ctx, if any.
func withScope(ctx context.Context, properties map[string]string) map[string]any {
	out := make(map[string]any, len(properties)+1)
	for k, v := range properties {
		out[k] = v
	}
	if id, ok := ScopeID(ctx); ok {
		out[SessionProperty] = id
	}

	return out
}
