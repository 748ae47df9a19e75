package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"recipe-recommender/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// RedisStore 跨程序的 AI 回應快取
// 程序內快取是第一層，這裡是重啟後仍然有效的第二層
type RedisStore struct {
	client *redis.Client
	ttl    config.CacheConfig
}

// NewRedisStore 創建 Redis 快取並測試連線
func NewRedisStore(redisCfg *config.RedisConfig, cacheCfg *config.CacheConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ttl:    *cacheCfg,
	}, nil
}

// Get 取得快取的模型回應
func (s *RedisStore) Get(ctx context.Context, prompt string) (string, error) {
	value, err := s.client.Get(ctx, s.generateKey(prompt)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("cache miss")
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	return value, nil
}

// Set 寫入模型回應
func (s *RedisStore) Set(ctx context.Context, prompt, value string) error {
	if err := s.client.Set(ctx, s.generateKey(prompt), value, s.ttl.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// generateKey 生成快取鍵
func (s *RedisStore) generateKey(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("ai:response:%s", hex.EncodeToString(hash[:]))
}

// Close 關閉 Redis 連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
