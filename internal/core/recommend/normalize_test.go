package recommend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-recommender/internal/pkg/common"
)

func TestNormalizeRecipeDefaults(t *testing.T) {
	got := NormalizeRecipe(nil)

	assert.Equal(t, "無名料理", got.Name)
	assert.Equal(t, "AI 主廚", got.Author)
	assert.Equal(t, 20, got.CookingTime)
	assert.Equal(t, 10, got.PrepTime)
	assert.Equal(t, 1, got.Servings)
	assert.Equal(t, common.DifficultyNormal, got.Difficulty)
	assert.Equal(t, common.CategoryOther, got.Category)
	assert.Equal(t, common.DishwashingNormal, got.Dishwashing)
	assert.Equal(t, common.OriginAI, got.Origin)
	assert.NotEmpty(t, got.Image)
	// 切片欄位絕不為 nil，前端可以直接迭代
	assert.NotNil(t, got.Ingredients)
	assert.NotNil(t, got.Steps)
	assert.NotNil(t, got.HealthTags)
	assert.NotNil(t, got.AvailableEquipment)
}

func TestNormalizeRecipeCoercions(t *testing.T) {
	raw := map[string]interface{}{
		"name":         "蛋炒飯",
		"cooking_time": json.Number("15.7"),
		"prep_time":    "5",
		"servings":     float64(2),
		"rating":       "4.5",
		"likes":        -3,
		"difficulty":   "簡單",
		"category":     "한식",
		"dishwashing":  "많음",
		"ingredients": []interface{}{
			map[string]interface{}{"name": "雞蛋", "amount": "2 顆"},
			"白飯",
			42, // 非法條目被忽略
		},
		"steps":               []interface{}{"打蛋", "下鍋"},
		"late_night_suitable": "TRUE",
		"nutrition": map[string]interface{}{
			"calories": json.Number("520"),
			"protein":  "18.5",
		},
	}

	got := NormalizeRecipe(raw)

	assert.Equal(t, "蛋炒飯", got.Name)
	assert.Equal(t, 15, got.CookingTime)
	assert.Equal(t, 5, got.PrepTime)
	assert.Equal(t, 2, got.Servings)
	assert.Equal(t, 4.5, got.Rating)
	// 負數按無效處理
	assert.Equal(t, 0, got.Likes)
	assert.Equal(t, common.DifficultyEasy, got.Difficulty)
	assert.Equal(t, common.CategoryKorean, got.Category)
	assert.Equal(t, common.DishwashingHigh, got.Dishwashing)
	assert.True(t, got.LateNightSuitable)

	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, "雞蛋", got.Ingredients[0].Name)
	assert.Equal(t, "2 顆", got.Ingredients[0].Amount)
	assert.Equal(t, "白飯", got.Ingredients[1].Name)

	assert.Equal(t, []string{"打蛋", "下鍋"}, got.Steps)
	assert.Equal(t, 520.0, got.Nutrition.Calories)
	assert.Equal(t, 18.5, got.Nutrition.Protein)
}

func TestNormalizeRecipeCookingTimeZeroGetsDefault(t *testing.T) {
	got := NormalizeRecipe(map[string]interface{}{"cooking_time": 0})
	assert.Equal(t, 20, got.CookingTime)
}

func TestClassifyOrigin(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
		want common.Origin
	}{
		{"explicit origin wins", map[string]interface{}{"origin": "seed", "id": "ai-123"}, common.OriginSeed},
		{"explicit origin case insensitive", map[string]interface{}{"origin": " User "}, common.OriginUser},
		{"legacy db prefix", map[string]interface{}{"id": "db-42"}, common.OriginServer},
		{"legacy ai prefix", map[string]interface{}{"id": "ai-42"}, common.OriginAI},
		{"legacy ai author sentinel", map[string]interface{}{"id": "42", "author": "AI 추천"}, common.OriginAI},
		{"user recipe flag", map[string]interface{}{"id": "42", "is_user_recipe": true}, common.OriginUser},
		{"unknown falls back to ai", map[string]interface{}{"id": "42"}, common.OriginAI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRecipe(tt.raw)
			assert.Equal(t, tt.want, got.Origin)
		})
	}
}

func TestNormalizeRecipeAsFallback(t *testing.T) {
	got := NormalizeRecipeAs(map[string]interface{}{"id": "plain"}, common.OriginSeed)
	assert.Equal(t, common.OriginSeed, got.Origin)
}
