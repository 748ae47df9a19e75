package recommend

import (
	"recipe-recommender/internal/pkg/common"
)

// ApplyFilters 套用結構化篩選條件，保留存活食譜的相對順序
// 任何一條規則不滿足就排除；食譜缺少的列表欄位一律當空列表處理
func ApplyFilters(recipes []common.Recipe, filters common.Filters) []common.Recipe {
	out := make([]common.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if passesFilters(recipe, filters) {
			out = append(out, recipe)
		}
	}
	return out
}

func passesFilters(recipe common.Recipe, filters common.Filters) bool {
	// 1. 料理時間上限
	if filters.MaxCookingTime != nil && recipe.CookingTime > *filters.MaxCookingTime {
		return false
	}

	// 2. 料理分類
	if len(filters.Categories) > 0 && !containsCategory(filters.Categories, recipe.Category) {
		return false
	}

	// 3. 洗碗量（食譜沒有洗碗量資訊時不通過）
	if len(filters.Dishwashing) > 0 {
		if recipe.Dishwashing == "" || !containsDishwashing(filters.Dishwashing, recipe.Dishwashing) {
			return false
		}
	}

	// 4. 宵夜限定
	if filters.LateNightOnly && !recipe.LateNightSuitable {
		return false
	}

	// 5. 健康標籤：至少要有一個交集
	if len(filters.HealthTags) > 0 && !hasAnyTag(recipe.HealthTags, filters.HealthTags) {
		return false
	}

	// 6. 設備：食譜所需設備必須全部在可用設備內，不需要設備的食譜一律通過
	if len(filters.AvailableEquipment) > 0 {
		for _, eq := range recipe.RequiredEquipment {
			if !containsString(filters.AvailableEquipment, eq) {
				return false
			}
		}
	}

	return true
}

func containsCategory(set []common.Category, v common.Category) bool {
	for _, c := range set {
		if c == v {
			return true
		}
	}
	return false
}

func containsDishwashing(set []common.Dishwashing, v common.Dishwashing) bool {
	for _, d := range set {
		if d == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func hasAnyTag(recipeTags, filterTags []string) bool {
	for _, tag := range filterTags {
		if containsString(recipeTags, tag) {
			return true
		}
	}
	return false
}
