package recommend

import (
	"math"

	"recipe-recommender/internal/pkg/common"
)

// Matcher 食材名稱比對策略
// 排名與篩選邏輯不關心實際用哪一種策略，預設為 ExactMatcher，
// 只有比對原始資料集時才換成 AliasMatcher
type Matcher interface {
	// Matches 判斷食譜食材名稱是否能對應到任一庫存食材名稱
	// pantryNames 必須先經過 PantryNames 正規化
	Matches(recipeIngredient string, pantryNames []string) bool
}

// ExactMatcher 預設比對策略：小寫、去除前後空白後做完全相等比對
type ExactMatcher struct{}

// Matches 實現 Matcher 介面
func (ExactMatcher) Matches(recipeIngredient string, pantryNames []string) bool {
	name := common.NormalizeName(recipeIngredient)
	if name == "" {
		return false
	}
	for _, p := range pantryNames {
		if p == name {
			return true
		}
	}
	return false
}

// PantryNames 將庫存食材轉為正規化後的名稱清單
func PantryNames(pantry []common.Ingredient) []string {
	names := make([]string, 0, len(pantry))
	for _, ing := range pantry {
		names = append(names, common.NormalizeName(ing.Name))
	}
	return names
}

// MatchPercentage 計算食譜食材與庫存的匹配率（0~100，四捨五入）
// 食譜沒有任何食材時一律回傳 0，避免除以零
func MatchPercentage(recipe common.Recipe, pantry []common.Ingredient) int {
	return MatchPercentageWith(ExactMatcher{}, recipe, pantry)
}

// MatchPercentageWith 以指定比對策略計算匹配率
func MatchPercentageWith(m Matcher, recipe common.Recipe, pantry []common.Ingredient) int {
	if len(recipe.Ingredients) == 0 {
		return 0
	}

	names := PantryNames(pantry)
	matched := 0
	for _, ing := range recipe.Ingredients {
		// 沒有名稱的條目不參與比對
		if common.NormalizeName(ing.Name) == "" {
			continue
		}
		if m.Matches(ing.Name, names) {
			matched++
		}
	}

	return int(math.Round(float64(matched) / float64(len(recipe.Ingredients)) * 100))
}

// MatchedIngredients 回傳食譜食材中庫存已持有的部分
func MatchedIngredients(recipe common.Recipe, pantry []common.Ingredient) []common.RecipeIngredient {
	matched, _ := partitionIngredients(ExactMatcher{}, recipe, pantry)
	return matched
}

// MissingIngredients 回傳食譜食材中庫存缺少的部分
func MissingIngredients(recipe common.Recipe, pantry []common.Ingredient) []common.RecipeIngredient {
	_, missing := partitionIngredients(ExactMatcher{}, recipe, pantry)
	return missing
}

// partitionIngredients 依庫存持有與否切分食譜食材，保留原始順序
func partitionIngredients(m Matcher, recipe common.Recipe, pantry []common.Ingredient) (matched, missing []common.RecipeIngredient) {
	names := PantryNames(pantry)
	matched = make([]common.RecipeIngredient, 0, len(recipe.Ingredients))
	missing = make([]common.RecipeIngredient, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		if common.NormalizeName(ing.Name) != "" && m.Matches(ing.Name, names) {
			matched = append(matched, ing)
		} else {
			missing = append(missing, ing)
		}
	}
	return matched, missing
}
