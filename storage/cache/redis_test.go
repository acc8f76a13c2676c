package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 需要本地 Redis：REDIS_TEST_ADDR=localhost:6379
func TestRedisRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	r, err := NewRedis(ctx, addr, time.Minute)
	require.NoError(t, err)
	defer r.Close()

	key := "test-" + time.Now().Format("150405.000000")
	_, ok, err := r.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Put(ctx, key, map[string]string{"CLIENT_NAME": "Kiss János"}))
	v, ok, err := r.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Kiss János", v["CLIENT_NAME"])
}
