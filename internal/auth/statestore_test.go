package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStateStore(t *testing.T, ttl time.Duration) (*StateStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStateStore(client, ttl), mr
}

func TestStateStoreIssueAndConsume(t *testing.T) {
	store, _ := newTestStateStore(t, time.Minute)
	ctx := context.Background()

	state, err := store.Issue(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, state)

	ok, err := store.Consume(ctx, state)
	require.NoError(t, err)
	assert.True(t, ok)

	// One-time use: a replayed state is rejected.
	ok, err = store.Consume(ctx, state)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStateStoreRejectsUnknownState(t *testing.T) {
	store, _ := newTestStateStore(t, time.Minute)

	ok, err := store.Consume(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Consume(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStateStoreExpiresStates(t *testing.T) {
	store, mr := newTestStateStore(t, time.Minute)
	ctx := context.Background()

	state, err := store.Issue(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	ok, err := store.Consume(ctx, state)
	require.NoError(t, err)
	assert.False(t, ok)
}
