package recommend

import (
	"sort"
	"time"

	"recipe-recommender/internal/pkg/common"
)

// Rank 複合排序：即將到期的匹配食材數優先（降冪），其次匹配率（降冪）
// 排序必須穩定，同分食譜保持輸入順序；輸入切片不會被修改
func Rank(recipes []common.Recipe, pantry []common.Ingredient, now time.Time) []common.Recipe {
	return RankWith(ExactMatcher{}, recipes, pantry, now)
}

// RankWith 以指定比對策略排序
func RankWith(m Matcher, recipes []common.Recipe, pantry []common.Ingredient, now time.Time) []common.Recipe {
	type rankedRecipe struct {
		recipe   common.Recipe
		expiring int
		match    int
	}

	ranked := make([]rankedRecipe, len(recipes))
	for i, recipe := range recipes {
		ranked[i] = rankedRecipe{
			recipe:   recipe,
			expiring: ExpiringSoonCount(recipe, pantry, now),
			match:    MatchPercentageWith(m, recipe, pantry),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].expiring != ranked[j].expiring {
			return ranked[i].expiring > ranked[j].expiring
		}
		return ranked[i].match > ranked[j].match
	})

	out := make([]common.Recipe, len(ranked))
	for i, r := range ranked {
		out[i] = r.recipe
	}
	return out
}
