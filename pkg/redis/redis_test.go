package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/config"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewClient(&config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCheckRateLimit_AllowsUpToLimit(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := c.CheckRateLimit(ctx, "1.2.3.4:/login", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "第 %d 次请求应放行", i+1)
	}

	ok, err := c.CheckRateLimit(ctx, "1.2.3.4:/login", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "超过窗口上限应拒绝")

	assert.True(t, mr.Exists(rateLimitPrefix+"1.2.3.4:/login"))
	assert.Greater(t, mr.TTL(rateLimitPrefix+"1.2.3.4:/login"), time.Duration(0))
}

func TestCheckRateLimit_KeysAreIndependent(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	ok, err := c.CheckRateLimit(ctx, "a", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.CheckRateLimit(ctx, "b", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckRateLimit_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewFromCmdable(rdb, zap.NewNop())
	mr.Close()

	_, err := c.CheckRateLimit(context.Background(), "k", 1, time.Minute)
	assert.Error(t, err)
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(&config.RedisConfig{Addr: addr}, zap.NewNop())
	assert.Error(t, err)
}
