package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/config"
)

// Client Redis 客户端封装
// 用于 Token 黑名单与上游规范记录的短 TTL 缓存
type Client struct {
	rdb    *goredis.Client
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
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Token 黑名单 ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken 将 JWT ID 加入黑名单，TTL 与 Token 剩余有效期一致
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // Token 已过期，无需加入黑名单
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted 检查 JWT ID 是否在黑名单中
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── 上游规范记录缓存 ──
//
// 写操作成功后必须先失效缓存再重新拉取，缓存只加速读路径

const recordPrefix = "record:"

// SetRecord 缓存规范记录的 JSON 序列化结果
func (c *Client) SetRecord(ctx context.Context, kind string, id int, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, recordKey(kind, id), payload, ttl).Err()
}

// GetRecord 读取缓存的规范记录，未命中返回 (nil, false, nil)
func (c *Client) GetRecord(ctx context.Context, kind string, id int) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, recordKey(kind, id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

// DeleteRecord 失效单条规范记录缓存
func (c *Client) DeleteRecord(ctx context.Context, kind string, id int) error {
	return c.rdb.Del(ctx, recordKey(kind, id)).Err()
}

func recordKey(kind string, id int) string {
	return fmt.Sprintf("%s%s:%d", recordPrefix, kind, id)
}

// ── 速率限制 ──

// CheckRateLimit 固定窗口计数限流
// 返回 true 表示放行，false 表示窗口内请求数已达上限
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
