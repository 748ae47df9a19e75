package recommend

import (
	"sort"
	"strings"
	"time"

	"recipe-recommender/internal/pkg/common"
)

// Service 推薦引擎
// 純計算，不持有任何狀態，目錄、庫存、瀏覽紀錄全部由呼叫端傳入
type Service struct {
	matcher Matcher
}

// NewService 創建推薦引擎，matcher 為 nil 時使用 ExactMatcher
func NewService(matcher Matcher) *Service {
	if matcher == nil {
		matcher = ExactMatcher{}
	}
	return &Service{matcher: matcher}
}

// Query 一次推薦查詢的輸入
type Query struct {
	Filters  common.Filters  `json:"filters"`
	ViewMode common.ViewMode `json:"view_mode,omitempty"`
	Search   string          `json:"search,omitempty"`
}

// DisplayRecipes 計算首頁顯示清單
// 流程：檢視模式 → 關鍵字搜尋 → 結構化篩選 → 匹配率門檻 → 複合排序。
// 庫存為空時不做匹配率過濾，所有食譜照常顯示
func (s *Service) DisplayRecipes(recipes []common.Recipe, pantry []common.Ingredient, history common.History, query Query, now time.Time) []common.Recipe {
	display := applyViewMode(recipes, query.ViewMode, history)

	if q := strings.TrimSpace(query.Search); q != "" {
		display = searchRecipes(display, q)
	}

	display = ApplyFilters(display, query.Filters)

	if len(pantry) > 0 {
		minThreshold := MinMatchPercentage(len(pantry))
		passed := make([]common.Recipe, 0, len(display))
		for _, recipe := range display {
			pct := MatchPercentageWith(s.matcher, recipe, pantry)
			if PassesThreshold(recipe, pct, minThreshold) {
				passed = append(passed, recipe)
			}
		}
		display = passed
	}

	return RankWith(s.matcher, display, pantry, now)
}

// SmartSections 計算三個智慧推薦區塊
func (s *Service) SmartSections(recipes []common.Recipe, pantry []common.Ingredient, history common.History, now time.Time) Sections {
	return SmartSections(recipes, pantry, history, now)
}

// MatchPercentage 以目前策略計算單一食譜的匹配率
func (s *Service) MatchPercentage(recipe common.Recipe, pantry []common.Ingredient) int {
	return MatchPercentageWith(s.matcher, recipe, pantry)
}

// applyViewMode 依檢視模式切出子集合
// 最近瀏覽模式按瀏覽順序排列（最新在前）
func applyViewMode(recipes []common.Recipe, mode common.ViewMode, history common.History) []common.Recipe {
	switch mode {
	case common.ViewModeFavorites:
		favorites := stringSet(history.Favorites)
		out := make([]common.Recipe, 0, len(recipes))
		for _, recipe := range recipes {
			if favorites[recipe.ID] {
				out = append(out, recipe)
			}
		}
		return out
	case common.ViewModeRecent:
		index := make(map[string]int, len(history.RecentlyViewed))
		for i, id := range history.RecentlyViewed {
			index[id] = i
		}
		out := make([]common.Recipe, 0, len(recipes))
		for _, recipe := range recipes {
			if _, ok := index[recipe.ID]; ok {
				out = append(out, recipe)
			}
		}
		// index 越小代表越近期
		sort.SliceStable(out, func(i, j int) bool {
			return index[out[i].ID] < index[out[j].ID]
		})
		return out
	default:
		return recipes
	}
}

// searchRecipes 以關鍵字比對名稱、食材與分類
func searchRecipes(recipes []common.Recipe, query string) []common.Recipe {
	q := strings.ToLower(query)
	out := make([]common.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if matchesSearch(recipe, q) {
			out = append(out, recipe)
		}
	}
	return out
}

func matchesSearch(recipe common.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(recipe.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(string(recipe.Category)), q) {
		return true
	}
	for _, ing := range recipe.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	return false
}
