package recommend

import (
	"sort"
	"time"

	"recipe-recommender/internal/pkg/common"
)

// SectionLimit 每個智慧推薦區塊最多顯示的食譜數
const SectionLimit = 3

// TimeSlot 一天中的時段
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"    // 06–10
	TimeSlotLunch     TimeSlot = "lunch"      // 10–14
	TimeSlotAfternoon TimeSlot = "afternoon"  // 14–18
	TimeSlotEvening   TimeSlot = "evening"    // 18–22
	TimeSlotLateNight TimeSlot = "late_night" // 22–06
)

// CurrentTimeSlot 由小時（0~23）判斷時段
func CurrentTimeSlot(hour int) TimeSlot {
	switch {
	case hour >= 6 && hour < 10:
		return TimeSlotMorning
	case hour >= 10 && hour < 14:
		return TimeSlotLunch
	case hour >= 14 && hour < 18:
		return TimeSlotAfternoon
	case hour >= 18 && hour < 22:
		return TimeSlotEvening
	default:
		return TimeSlotLateNight
	}
}

// AlmostMakeableRecipe 「差一點就能做」的食譜與缺少的食材
type AlmostMakeableRecipe struct {
	Recipe       common.Recipe `json:"recipe"`
	MissingCount int           `json:"missing_count"`
	Missing      []string      `json:"missing"`
}

// Sections 三個獨立計算的智慧推薦區塊
type Sections struct {
	TimeSlot       TimeSlot               `json:"time_slot"`
	TimeBased      []common.Recipe        `json:"time_based"`
	AlmostMakeable []AlmostMakeableRecipe `json:"almost_makeable"`
	Personalized   []common.Recipe        `json:"personalized"`
}

// TimeBasedRecommendations 依時段推薦：宵夜時段只留適合宵夜的食譜，
// 早晨排除超過 30 分鐘的料理，其餘時段不做時間限制。
// 排序：匹配率降冪，同分以料理時間短者優先
func TimeBasedRecommendations(recipes []common.Recipe, pantry []common.Ingredient, hour int) []common.Recipe {
	survivors := make([]common.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if (hour >= 22 || hour < 6) && !recipe.LateNightSuitable {
			continue
		}
		if hour >= 6 && hour < 10 && recipe.CookingTime > 30 {
			continue
		}
		survivors = append(survivors, recipe)
	}

	matches := make(map[string]int, len(survivors))
	for _, recipe := range survivors {
		matches[recipe.ID] = MatchPercentage(recipe, pantry)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if matches[survivors[i].ID] != matches[survivors[j].ID] {
			return matches[survivors[i].ID] > matches[survivors[j].ID]
		}
		return survivors[i].CookingTime < survivors[j].CookingTime
	})

	return capRecipes(survivors, SectionLimit)
}

// AlmostMakeable 缺 1~2 樣食材就能完成的食譜
// 缺 0 樣的屬於一般推薦清單，缺 3 樣以上不算「差一點」
func AlmostMakeable(recipes []common.Recipe, pantry []common.Ingredient) []AlmostMakeableRecipe {
	candidates := make([]AlmostMakeableRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		missing := MissingIngredients(recipe, pantry)
		if len(missing) < 1 || len(missing) > 2 {
			continue
		}
		names := make([]string, len(missing))
		for i, ing := range missing {
			names[i] = ing.Name
		}
		candidates = append(candidates, AlmostMakeableRecipe{
			Recipe:       recipe,
			MissingCount: len(missing),
			Missing:      names,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MissingCount < candidates[j].MissingCount
	})

	if len(candidates) > SectionLimit {
		candidates = candidates[:SectionLimit]
	}
	return candidates
}

// Personalized 取向推薦：從最愛與最近瀏覽中統計偏好的分類與難度，
// 排除看過的食譜後按偏好給分（分類 +2、難度 +1），高分優先。
// 沒有瀏覽紀錄時全部 0 分，維持輸入順序取前幾筆
func Personalized(recipes []common.Recipe, history common.History) []common.Recipe {
	favorites := stringSet(history.Favorites)
	viewed := stringSet(history.RecentlyViewed)

	preferredCategory, preferredDifficulty := analyzePreferences(recipes, favorites, viewed)

	candidates := make([]common.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if favorites[recipe.ID] || viewed[recipe.ID] {
			continue
		}
		candidates = append(candidates, recipe)
	}

	score := func(recipe common.Recipe) int {
		s := 0
		if preferredCategory != "" && recipe.Category == preferredCategory {
			s += 2
		}
		if preferredDifficulty != "" && recipe.Difficulty == preferredDifficulty {
			s += 1
		}
		return s
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return score(candidates[i]) > score(candidates[j])
	})

	return capRecipes(candidates, SectionLimit)
}

// analyzePreferences 統計使用者接觸過的食譜中最常見的分類與難度
// 同頻率時取先遇到的那個（插入順序）
func analyzePreferences(recipes []common.Recipe, favorites, viewed map[string]bool) (common.Category, common.Difficulty) {
	categoryCount := map[common.Category]int{}
	categoryOrder := []common.Category{}
	difficultyCount := map[common.Difficulty]int{}
	difficultyOrder := []common.Difficulty{}

	for _, recipe := range recipes {
		if !favorites[recipe.ID] && !viewed[recipe.ID] {
			continue
		}
		if _, seen := categoryCount[recipe.Category]; !seen {
			categoryOrder = append(categoryOrder, recipe.Category)
		}
		categoryCount[recipe.Category]++
		if _, seen := difficultyCount[recipe.Difficulty]; !seen {
			difficultyOrder = append(difficultyOrder, recipe.Difficulty)
		}
		difficultyCount[recipe.Difficulty]++
	}

	var preferredCategory common.Category
	best := 0
	for _, c := range categoryOrder {
		if categoryCount[c] > best {
			preferredCategory = c
			best = categoryCount[c]
		}
	}

	var preferredDifficulty common.Difficulty
	best = 0
	for _, d := range difficultyOrder {
		if difficultyCount[d] > best {
			preferredDifficulty = d
			best = difficultyCount[d]
		}
	}

	return preferredCategory, preferredDifficulty
}

// SmartSections 計算三個智慧推薦區塊
func SmartSections(recipes []common.Recipe, pantry []common.Ingredient, history common.History, now time.Time) Sections {
	hour := now.Hour()
	return Sections{
		TimeSlot:       CurrentTimeSlot(hour),
		TimeBased:      TimeBasedRecommendations(recipes, pantry, hour),
		AlmostMakeable: AlmostMakeable(recipes, pantry),
		Personalized:   Personalized(recipes, history),
	}
}

func capRecipes(recipes []common.Recipe, limit int) []common.Recipe {
	if len(recipes) > limit {
		return recipes[:limit]
	}
	return recipes
}

func stringSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
