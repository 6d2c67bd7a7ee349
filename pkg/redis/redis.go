package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Vayras/ta-backend/config"
)

// Client Redis 客户端封装
// 当前仅用于登录接口限流；名单数据不进入缓存
type Client struct {
	rdb    goredis.Cmdable
	closer func() error
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, closer: rdb.Close, logger: logger}, nil
}

// NewFromCmdable 基于已有命令接口构造客户端（测试注入用）
func NewFromCmdable(rdb goredis.Cmdable, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, closer: func() error { return nil }, logger: logger}
}

// ── 滑动窗口限流 ──

const rateLimitPrefix = "rate_limit:"

// CheckRateLimit 判断 key 在 window 内的请求数是否未超过 limit
// 使用有序集合记录请求时间戳：先清理窗口外记录，再写入本次请求并计数
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	fullKey := rateLimitPrefix + key
	windowStart := now.Add(-window).UnixNano()

	pipe := c.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, fullKey, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, fullKey, goredis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	card := pipe.ZCard(ctx, fullKey)
	pipe.Expire(ctx, fullKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return card.Val() <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.closer()
}
