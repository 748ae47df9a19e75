package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-recommender/internal/pkg/common"
)

func TestMemoryRepositoryOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Put(ctx, common.Recipe{ID: "a", Name: "a"}))
	require.NoError(t, repo.Put(ctx, common.Recipe{ID: "b", Name: "b"}))
	require.NoError(t, repo.Put(ctx, common.Recipe{ID: "c", Name: "c"}))
	// 覆寫不改變順位
	require.NoError(t, repo.Put(ctx, common.Recipe{ID: "a", Name: "a2"}))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "a2", all[0].Name)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestMemoryRepositoryRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Put(ctx, common.Recipe{ID: "a"}))
	require.NoError(t, repo.Remove(ctx, "a"))

	_, err := repo.Get(ctx, "a")
	assert.ErrorIs(t, err, common.ErrRecipeNotFound)
	assert.ErrorIs(t, repo.Remove(ctx, "a"), common.ErrRecipeNotFound)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestServiceBootstrapIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	require.NoError(t, svc.Bootstrap(ctx))
	require.NoError(t, svc.Bootstrap(ctx))

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(SeedRecipes()))
	for _, recipe := range all {
		assert.Equal(t, common.OriginSeed, recipe.Origin)
	}
}

func TestServiceAddUser(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	recipe, err := svc.AddUser(ctx, map[string]interface{}{
		"name":     "媽媽的咖哩",
		"category": "japanese",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, recipe.ID)
	assert.NotEmpty(t, recipe.CreatedAt)
	assert.Equal(t, common.OriginUser, recipe.Origin)
	assert.True(t, recipe.IsUserRecipe)
	assert.Equal(t, common.CategoryJapanese, recipe.Category)

	stored, err := svc.Get(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe, stored)
}

func TestServiceAddGeneratedNormalizesLoosePayload(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	recipe, err := svc.AddGenerated(ctx, map[string]interface{}{
		"name":         "AI 石鍋拌飯",
		"cooking_time": "25",
		"ingredients":  []interface{}{"白飯", "雞蛋"},
	})
	require.NoError(t, err)

	assert.Equal(t, common.OriginAI, recipe.Origin)
	assert.Equal(t, 25, recipe.CookingTime)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "白飯", recipe.Ingredients[0].Name)
}

func TestSeedRecipesShape(t *testing.T) {
	for _, recipe := range SeedRecipes() {
		assert.NotEmpty(t, recipe.ID)
		assert.NotEmpty(t, recipe.Name)
		assert.NotEmpty(t, recipe.Ingredients)
		assert.NotEmpty(t, recipe.Steps)
		assert.Greater(t, recipe.CookingTime, 0)
		assert.Equal(t, common.OriginSeed, recipe.Origin)
	}
}
