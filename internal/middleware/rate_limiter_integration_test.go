//go:build integration

package middleware

import (
	"context"
	"net/http"
	"testing"
	"time"

	"gestorcash/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(url)
	require.NoError(t, err)
	require.NotNil(t, rdb)
	return rdb
}

func TestRateLimiterSharedWindow(t *testing.T) {
	ctx := context.Background()
	rdb := startRedis(t)

	// Two engines model two server instances sharing one Redis.
	a := newEngine(RateLimiter(3, time.Minute, rdb))
	b := newEngine(RateLimiter(3, time.Minute, rdb))

	assert.Equal(t, http.StatusOK, serve(a, http.MethodGet, "/ping", nil).Code)
	assert.Equal(t, http.StatusOK, serve(b, http.MethodGet, "/ping", nil).Code)
	assert.Equal(t, http.StatusOK, serve(a, http.MethodGet, "/ping", nil).Code)

	w := serve(b, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	ttl, err := rdb.TTL(ctx, "gestorcash:ratelimit:192.0.2.1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRateLimiterRestoresMissingTTL(t *testing.T) {
	ctx := context.Background()
	rdb := startRedis(t)
	key := "gestorcash:ratelimit:192.0.2.1"

	// A counter stranded over the limit with no expiry.
	require.NoError(t, rdb.Set(ctx, key, 50, 0).Err())

	r := newEngine(RateLimiter(3, time.Minute, rdb))
	w := serve(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	ttl, err := rdb.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}
