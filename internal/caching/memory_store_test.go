package caching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounterIncrements(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		count, err := store.Incr(ctx, "login:10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}
}

func TestMemoryCounterKeysAreIndependent(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	_, err := store.Incr(ctx, "login:10.0.0.1", time.Minute)
	require.NoError(t, err)

	count, err := store.Incr(ctx, "register:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Incr(ctx, "login:10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryCounterWindowResets(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	base := time.Now()
	store.now = func() time.Time { return base }

	for i := 0; i < 3; i++ {
		_, err := store.Incr(ctx, "login:10.0.0.1", time.Minute)
		require.NoError(t, err)
	}

	// Past the window deadline the next increment starts a fresh count.
	store.now = func() time.Time { return base.Add(time.Minute + time.Second) }
	count, err := store.Incr(ctx, "login:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSweepRemovesExpiredWindows(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	base := time.Now()
	store.now = func() time.Time { return base }

	_, err := store.Incr(ctx, "login:10.0.0.1", time.Minute)
	require.NoError(t, err)
	_, err = store.Incr(ctx, "login:10.0.0.2", time.Hour)
	require.NoError(t, err)

	store.now = func() time.Time { return base.Add(2 * time.Minute) }
	assert.Equal(t, 1, store.Sweep())
	assert.Len(t, store.windows, 1)

	// The surviving long window still carries its count.
	count, err := store.Incr(ctx, "login:10.0.0.2", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
