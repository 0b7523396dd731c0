package lock

import (
	"context"
	"testing"
	"time"

	"nutritrack/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClaimer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	first := NewRedisClaimer(client, time.Minute)
	second := NewRedisClaimer(client, time.Minute)

	t.Run("only one owner wins a key", func(t *testing.T) {
		ok, err := first.Claim(ctx, "user-1:lunch:2024-05-01")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = second.Claim(ctx, "user-1:lunch:2024-05-01")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("release by a non-owner keeps the claim", func(t *testing.T) {
		require.NoError(t, second.Release(ctx, "user-1:lunch:2024-05-01"))

		ok, err := second.Claim(ctx, "user-1:lunch:2024-05-01")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("release by the owner frees the key", func(t *testing.T) {
		require.NoError(t, first.Release(ctx, "user-1:lunch:2024-05-01"))

		ok, err := second.Claim(ctx, "user-1:lunch:2024-05-01")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("claims expire", func(t *testing.T) {
		short := NewRedisClaimer(client, 100*time.Millisecond)

		ok, err := short.Claim(ctx, "user-2:daily-goal:2024-05-01")
		require.NoError(t, err)
		require.True(t, ok)

		assert.Eventually(t, func() bool {
			ok, err := first.Claim(ctx, "user-2:daily-goal:2024-05-01")
			return err == nil && ok
		}, 3*time.Second, 50*time.Millisecond)
	})
}

func TestLocalClaimer(t *testing.T) {
	var c localClaimer

	ok, err := c.Claim(context.Background(), "any")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, c.Release(context.Background(), "any"))
}
