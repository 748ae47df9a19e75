package pantry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-recommender/internal/pkg/common"
)

func TestServiceAddValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	tests := []struct {
		name       string
		ingredient common.Ingredient
		wantErr    bool
	}{
		{"valid", common.Ingredient{Name: "雞蛋"}, false},
		{"valid with expiration", common.Ingredient{Name: "牛奶", ExpirationDate: "2025-04-01"}, false},
		{"empty name", common.Ingredient{Name: "  "}, true},
		{"bad expiration format", common.Ingredient{Name: "豆腐", ExpirationDate: "04/01/2025"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.ingredient)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, common.IsValidationError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestServiceAddAssignsID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	added, err := svc.Add(ctx, common.Ingredient{Name: "洋蔥"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, added, all[0])
}

func TestServiceNotifiesOnChange(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	changes := 0
	svc.OnChange(func() { changes++ })

	added, err := svc.Add(ctx, common.Ingredient{Name: "雞蛋"})
	require.NoError(t, err)
	added.Quantity = "3 顆"
	_, err = svc.Update(ctx, added)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, added.ID))

	assert.Equal(t, 3, changes)

	// 驗證失敗不算變動
	_, err = svc.Add(ctx, common.Ingredient{Name: ""})
	require.Error(t, err)
	assert.Equal(t, 3, changes)
}

func TestServiceUpdateMissing(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	_, err := svc.Update(ctx, common.Ingredient{ID: "missing", Name: "雞蛋"})
	assert.ErrorIs(t, err, common.ErrIngredientNotFound)
}

func TestHistoryToggleFavorite(t *testing.T) {
	h := NewHistoryService()

	assert.True(t, h.ToggleFavorite("a"))
	assert.True(t, h.ToggleFavorite("b"))
	assert.False(t, h.ToggleFavorite("a"))

	got := h.History()
	assert.Equal(t, []string{"b"}, got.Favorites)
}

func TestHistoryMarkViewed(t *testing.T) {
	h := NewHistoryService()

	h.MarkViewed("a")
	h.MarkViewed("b")
	h.MarkViewed("a") // 重複瀏覽搬到最前

	got := h.History()
	assert.Equal(t, []string{"a", "b"}, got.RecentlyViewed)
}

func TestHistoryMarkViewedCap(t *testing.T) {
	h := NewHistoryService()

	for i := 0; i < RecentlyViewedLimit+5; i++ {
		h.MarkViewed(string(rune('a' + i)))
	}

	got := h.History()
	require.Len(t, got.RecentlyViewed, RecentlyViewedLimit)
	// 最新的在最前面
	assert.Equal(t, string(rune('a'+RecentlyViewedLimit+4)), got.RecentlyViewed[0])
}

func TestHistorySnapshotIsCopy(t *testing.T) {
	h := NewHistoryService()
	h.ToggleFavorite("a")

	got := h.History()
	got.Favorites[0] = "mutated"

	assert.Equal(t, []string{"a"}, h.History().Favorites)
}
