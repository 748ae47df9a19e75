package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

const (
	recipeHashKey  = "catalog:recipes"
	recipeOrderKey = "catalog:recipe_ids"
)

// RedisRepository Redis 後端的食譜儲存
// 食譜本體放 hash，寫入順序另外記在 list，讀取時按 list 重建順序
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository 創建 Redis 食譜儲存並測試連線
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

// All 按寫入順序回傳全部食譜
func (r *RedisRepository) All(ctx context.Context) ([]common.Recipe, error) {
	ids, err := r.client.LRange(ctx, recipeOrderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe ids: %w", err)
	}
	if len(ids) == 0 {
		return []common.Recipe{}, nil
	}

	values, err := r.client.HMGet(ctx, recipeHashKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	out := make([]common.Recipe, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var recipe common.Recipe
		if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe: %w", err)
		}
		out = append(out, recipe)
	}
	return out, nil
}

// Get 取得單一食譜
func (r *RedisRepository) Get(ctx context.Context, id string) (common.Recipe, error) {
	raw, err := r.client.HGet(ctx, recipeHashKey, id).Result()
	if err != nil {
		if err == redis.Nil {
			return common.Recipe{}, common.ErrRecipeNotFound
		}
		return common.Recipe{}, fmt.Errorf("failed to get recipe: %w", err)
	}

	var recipe common.Recipe
	if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
		return common.Recipe{}, fmt.Errorf("failed to unmarshal recipe: %w", err)
	}
	return recipe, nil
}

// Put 寫入食譜，同 ID 覆寫且保留原本的順位
func (r *RedisRepository) Put(ctx context.Context, recipe common.Recipe) error {
	data, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}

	exists, err := r.client.HExists(ctx, recipeHashKey, recipe.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to check recipe: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, recipeHashKey, recipe.ID, data)
	if !exists {
		pipe.RPush(ctx, recipeOrderKey, recipe.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store recipe: %w", err)
	}
	return nil
}

// Remove 刪除食譜
func (r *RedisRepository) Remove(ctx context.Context, id string) error {
	removed, err := r.client.HDel(ctx, recipeHashKey, id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if removed == 0 {
		return common.ErrRecipeNotFound
	}
	if err := r.client.LRem(ctx, recipeOrderKey, 0, id).Err(); err != nil {
		return fmt.Errorf("failed to delete recipe id: %w", err)
	}
	return nil
}

// Close 關閉 Redis 連線
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
