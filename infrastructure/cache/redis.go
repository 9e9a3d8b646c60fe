package cache

import (
	"context"
	"sync"
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/common/log"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/config"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const SentinelMode = "sentinel"

var (
	cacheOnce    sync.Once
	defaultCache Cache
)

// RedisCache redis客户端
type RedisCache struct {
	client redis.UniversalClient
}

// NewCacheAccess 获取全局缓存实例，连接失败时仅告警，调用方需容忍 nil 返回值之外的降级逻辑
func NewCacheAccess() Cache {
	cacheOnce.Do(func() {
		c, err := NewRedisCache(config.Get().Redis)
		if err != nil {
			log.Errorf("init redis cache err: %v", err)
			return
		}
		defaultCache = c
	})
	return defaultCache
}

// NewRedisCache 创建 Redis 实例
func NewRedisCache(cfg config.RedisCfg) (Cache, error) {
	var client redis.UniversalClient

	if cfg.Mode == SentinelMode && cfg.MasterName != "" && len(cfg.Addrs) > 0 {
		client = newSentinelClient(cfg)
	} else {
		client = newStandaloneClient(cfg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "连接 redis 失败")
	}

	return &RedisCache{client: client}, nil
}

// newSentinelClient Sentinel 模式
func newSentinelClient(cfg config.RedisCfg) redis.UniversalClient {
	return redis.NewFailoverClient(&redis.FailoverOptions{
		MasterName:    cfg.MasterName,
		SentinelAddrs: cfg.Addrs,
		Password:      cfg.Password,
		DB:            cfg.DB,

		// 连接池配置
		PoolSize:     100,
		MinIdleConns: 10,
		MaxRetries:   3,

		// 超时配置
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	})
}

// newStandaloneClient Standalone 模式
func newStandaloneClient(cfg config.RedisCfg) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,

		// 连接池配置
		PoolSize:     100,
		MinIdleConns: 10,
		MaxRetries:   3,

		// 超时配置
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	})
}

// Get 获取缓存值。
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", errors.Errorf("key not found: %s", key)
	}
	if err != nil {
		return "", errors.Wrap(err, "redis get")
	}
	return value, nil
}

// Set 设置缓存值。
func (r *RedisCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	err := r.client.Set(ctx, key, value, expiration).Err()
	if err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

// Del 删除缓存键。
func (r *RedisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()
	if err != nil {
		return errors.Wrap(err, "redis del")
	}
	return nil
}

// Exists 检查键是否存在。
func (r *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis exists")
	}
	return n > 0, nil
}

// Close 关闭 Redis 连接。
func (r *RedisCache) Close() error {
	return r.client.Close()
}
