package catalog

import (
	"context"
	"sync"

	"recipe-recommender/internal/pkg/common"
)

// Repository 食譜目錄的持久化介面
// 回傳順序必須穩定：先存先出，推薦引擎的排序穩定性依賴這一點
type Repository interface {
	All(ctx context.Context) ([]common.Recipe, error)
	Get(ctx context.Context, id string) (common.Recipe, error)
	Put(ctx context.Context, recipe common.Recipe) error
	Remove(ctx context.Context, id string) error
}

// MemoryRepository 程序內食譜儲存
type MemoryRepository struct {
	mu      sync.RWMutex
	recipes map[string]common.Recipe
	order   []string
}

// NewMemoryRepository 創建程序內食譜儲存
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		recipes: make(map[string]common.Recipe),
		order:   []string{},
	}
}

// All 按寫入順序回傳全部食譜
func (r *MemoryRepository) All(ctx context.Context) ([]common.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]common.Recipe, 0, len(r.order))
	for _, id := range r.order {
		if recipe, ok := r.recipes[id]; ok {
			out = append(out, recipe)
		}
	}
	return out, nil
}

// Get 取得單一食譜
func (r *MemoryRepository) Get(ctx context.Context, id string) (common.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return common.Recipe{}, common.ErrRecipeNotFound
	}
	return recipe, nil
}

// Put 寫入食譜，同 ID 覆寫且保留原本的順位
func (r *MemoryRepository) Put(ctx context.Context, recipe common.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.recipes[recipe.ID]; !exists {
		r.order = append(r.order, recipe.ID)
	}
	r.recipes[recipe.ID] = recipe
	return nil
}

// Remove 刪除食譜
func (r *MemoryRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.recipes[id]; !exists {
		return common.ErrRecipeNotFound
	}
	delete(r.recipes, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
