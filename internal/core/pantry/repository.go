package pantry

import (
	"context"
	"sync"

	"recipe-recommender/internal/pkg/common"
)

// Repository 庫存食材的持久化介面
// 回傳順序穩定：先加入的食材排前面
type Repository interface {
	All(ctx context.Context) ([]common.Ingredient, error)
	Get(ctx context.Context, id string) (common.Ingredient, error)
	Put(ctx context.Context, ingredient common.Ingredient) error
	Remove(ctx context.Context, id string) error
}

// MemoryRepository 程序內庫存儲存
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]common.Ingredient
	order []string
}

// NewMemoryRepository 創建程序內庫存儲存
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]common.Ingredient),
		order: []string{},
	}
}

// All 按加入順序回傳全部食材
func (r *MemoryRepository) All(ctx context.Context) ([]common.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]common.Ingredient, 0, len(r.order))
	for _, id := range r.order {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// Get 取得單一食材
func (r *MemoryRepository) Get(ctx context.Context, id string) (common.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return common.Ingredient{}, common.ErrIngredientNotFound
	}
	return item, nil
}

// Put 寫入食材，同 ID 覆寫且保留原本的順位
func (r *MemoryRepository) Put(ctx context.Context, ingredient common.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[ingredient.ID]; !exists {
		r.order = append(r.order, ingredient.ID)
	}
	r.items[ingredient.ID] = ingredient
	return nil
}

// Remove 刪除食材
func (r *MemoryRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return common.ErrIngredientNotFound
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
