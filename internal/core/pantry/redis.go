package pantry

import (
	"context"
	"encoding/json"
	"fmt"

	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

const (
	pantryHashKey  = "pantry:ingredients"
	pantryOrderKey = "pantry:ingredient_ids"
)

// RedisRepository Redis 後端的庫存儲存
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository 創建 Redis 庫存儲存並測試連線
func NewRedisRepository(cfg *config.RedisConfig) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRepository{client: client}, nil
}

// All 按加入順序回傳全部食材
func (r *RedisRepository) All(ctx context.Context) ([]common.Ingredient, error) {
	ids, err := r.client.LRange(ctx, pantryOrderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredient ids: %w", err)
	}
	if len(ids) == 0 {
		return []common.Ingredient{}, nil
	}

	values, err := r.client.HMGet(ctx, pantryHashKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}

	out := make([]common.Ingredient, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var item common.Ingredient
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ingredient: %w", err)
		}
		out = append(out, item)
	}
	return out, nil
}

// Get 取得單一食材
func (r *RedisRepository) Get(ctx context.Context, id string) (common.Ingredient, error) {
	raw, err := r.client.HGet(ctx, pantryHashKey, id).Result()
	if err != nil {
		if err == redis.Nil {
			return common.Ingredient{}, common.ErrIngredientNotFound
		}
		return common.Ingredient{}, fmt.Errorf("failed to get ingredient: %w", err)
	}

	var item common.Ingredient
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return common.Ingredient{}, fmt.Errorf("failed to unmarshal ingredient: %w", err)
	}
	return item, nil
}

// Put 寫入食材，同 ID 覆寫且保留原本的順位
func (r *RedisRepository) Put(ctx context.Context, ingredient common.Ingredient) error {
	data, err := json.Marshal(ingredient)
	if err != nil {
		return fmt.Errorf("failed to marshal ingredient: %w", err)
	}

	exists, err := r.client.HExists(ctx, pantryHashKey, ingredient.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to check ingredient: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, pantryHashKey, ingredient.ID, data)
	if !exists {
		pipe.RPush(ctx, pantryOrderKey, ingredient.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store ingredient: %w", err)
	}
	return nil
}

// Remove 刪除食材
func (r *RedisRepository) Remove(ctx context.Context, id string) error {
	removed, err := r.client.HDel(ctx, pantryHashKey, id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	if removed == 0 {
		return common.ErrIngredientNotFound
	}
	if err := r.client.LRem(ctx, pantryOrderKey, 0, id).Err(); err != nil {
		return fmt.Errorf("failed to delete ingredient id: %w", err)
	}
	return nil
}

// Close 關閉 Redis 連線
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
