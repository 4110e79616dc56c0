package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senthur/internal/domain"
	"senthur/internal/report"
)

func TestNoopReportCache(t *testing.T) {
	var c NoopReportCache
	ctx := context.Background()

	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, gen, "2024-05-01", "2024-05-31", &report.Stats{TotalRevenue: 10}, time.Minute))
	got, ok, err := c.Get(ctx, gen, "2024-05-01", "2024-05-31")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.NoError(t, c.Invalidate(ctx))
	assert.NoError(t, c.Close())
}

func TestSummaryKey(t *testing.T) {
	assert.Equal(t, "senthur:report:3:2024-05-01:2024-05-31", SummaryKey(3, "2024-05-01", "2024-05-31"))
}

func setupRedis(t *testing.T) *RedisReportCache {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	c := NewRedisReportCache(addr, "", 15)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		c.Close()
		t.Skipf("skipping: redis not available: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisReportCache_RoundTripAndInvalidate(t *testing.T) {
	c := setupRedis(t)
	ctx := context.Background()
	stats := &report.Stats{
		Start:        "2024-05-01",
		End:          "2024-05-31",
		Counts:       map[domain.OrderStatus]int{domain.OrderStatusFullyPaid: 2},
		TotalRevenue: 6000,
	}

	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, gen, stats.Start, stats.End, stats, time.Minute))
	got, ok, err := c.Get(ctx, gen, stats.Start, stats.End)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 6000.0, got.TotalRevenue)
	assert.Equal(t, 2, got.Counts[domain.OrderStatusFullyPaid])

	require.NoError(t, c.Invalidate(ctx))
	next, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, gen+1, next)
	_, ok, err = c.Get(ctx, next, stats.Start, stats.End)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisReportCache_SetPinnedToEarlierGeneration(t *testing.T) {
	c := setupRedis(t)
	ctx := context.Background()

	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Set(ctx, gen, "2024-06-01", "2024-06-30", &report.Stats{TotalRevenue: 1}, time.Minute))

	next, err := c.Generation(ctx)
	require.NoError(t, err)
	_, ok, err := c.Get(ctx, next, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.False(t, ok)
}
