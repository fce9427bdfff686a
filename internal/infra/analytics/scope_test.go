package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScope(t *testing.T) {
	var released []string

	ctx, release := newScope(context.Background(), func(id string) {
		released = append(released, id)
	})

	id, ok := ScopeID(ctx)
	require.True(t, ok)
	assert.NotEmpty(t, id)

	release()
	release()
	assert.Equal(t, []string{id}, released)
}

func TestScopeID_Unscoped(t *testing.T) {
	_, ok := ScopeID(context.Background())
	assert.False(t, ok)
}

func TestWithScope(t *testing.T) {
	props := map[string]string{"status": "processed"}

	assert.Equal(t, map[string]any{"status": "processed"}, withScope(context.Background(), props))

	ctx, release := newScope(context.Background(), nil)
	defer release()
	id, _ := ScopeID(ctx)

	tagged := withScope(ctx, props)
	assert.Equal(t, id, tagged[SessionProperty])
	assert.Equal(t, "processed", tagged["status"])
	assert.NotContains(t, props, SessionProperty)
}
