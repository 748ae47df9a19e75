package recommend

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"recipe-recommender/internal/pkg/common"
)

// 正規化預設值
// AI 生成的食譜欄位殘缺是常態，所有欄位都必須有安全預設
const (
	defaultRecipeName  = "無名料理"
	defaultRecipeImage = "https://source.unsplash.com/800x600/?food"
	defaultDescription = "AI 主廚推薦的特色食譜。"
	defaultAuthor      = "AI 主廚"
	defaultCookingTime = 20
	defaultPrepTime    = 10
	defaultServings    = 1

	// 舊版資料用 author 哨兵值標記 AI 推薦
	legacyAIAuthor = "AI 추천"
)

// NormalizeRecipe 將任意形狀的食譜 payload 轉成完整的 Recipe
// 這是系統邊界上唯一接觸未驗證資料的函數：總函數，絕不失敗，
// 缺漏或型別錯誤的欄位一律補上預設值。來源無法從 payload 判斷時歸為 AI 生成
func NormalizeRecipe(raw map[string]interface{}) common.Recipe {
	return NormalizeRecipeAs(raw, common.OriginAI)
}

// NormalizeRecipeAs 同 NormalizeRecipe，但指定無法判斷來源時的預設值
func NormalizeRecipeAs(raw map[string]interface{}, fallback common.Origin) common.Recipe {
	if raw == nil {
		raw = map[string]interface{}{}
	}

	recipe := common.Recipe{
		ID:                asString(raw["id"]),
		Name:              stringOr(raw["name"], defaultRecipeName),
		Description:       stringOr(raw["description"], defaultDescription),
		CookingTime:       positiveIntOr(raw["cooking_time"], defaultCookingTime),
		PrepTime:          positiveIntOr(raw["prep_time"], defaultPrepTime),
		Servings:          positiveIntOr(raw["servings"], defaultServings),
		Difficulty:        normalizeDifficulty(asString(raw["difficulty"])),
		Category:          normalizeCategory(asString(raw["category"])),
		Dishwashing:       normalizeDishwashing(asString(raw["dishwashing"])),
		LateNightSuitable: asBool(raw["late_night_suitable"]),
		HealthTags:        asStringSlice(raw["health_tags"]),
		RequiredEquipment: asStringSlice(raw["required_equipment"]),
		// 可用設備是使用者狀態，不屬於食譜本身，正規化時一律清空
		AvailableEquipment: []string{},
		Ingredients:        asIngredients(raw["ingredients"]),
		Steps:              asStringSlice(raw["steps"]),
		Image:              stringOr(raw["image"], defaultRecipeImage),
		Tips:               asStringSlice(raw["tips"]),
		Nutrition:          asNutrition(raw["nutrition"]),
		History:            asString(raw["history"]),
		Author:             stringOr(raw["author"], defaultAuthor),
		Likes:              positiveIntOr(raw["likes"], 0),
		Rating:             asFloat(raw["rating"]),
		CommentCount:       positiveIntOr(raw["comment_count"], 0),
		IsUserRecipe:       asBool(raw["is_user_recipe"]),
		CreatedAt:          asString(raw["created_at"]),
	}

	recipe.Origin = classifyOrigin(raw, recipe, fallback)

	return recipe
}

// classifyOrigin 決定食譜來源
// 優先讀明確的 origin 欄位；否則辨認舊版標記（author 哨兵值、id 前綴），
// 兩者都沒有就用 fallback
func classifyOrigin(raw map[string]interface{}, recipe common.Recipe, fallback common.Origin) common.Origin {
	switch common.Origin(common.NormalizeName(asString(raw["origin"]))) {
	case common.OriginSeed:
		return common.OriginSeed
	case common.OriginUser:
		return common.OriginUser
	case common.OriginServer:
		return common.OriginServer
	case common.OriginAI:
		return common.OriginAI
	}

	if strings.HasPrefix(recipe.ID, "db-") {
		return common.OriginServer
	}
	if strings.HasPrefix(recipe.ID, "ai-") || recipe.Author == legacyAIAuthor {
		return common.OriginAI
	}
	if recipe.IsUserRecipe {
		return common.OriginUser
	}

	return fallback
}

func normalizeCategory(v string) common.Category {
	switch common.Category(common.NormalizeName(v)) {
	case common.CategoryKorean, common.CategoryJapanese, common.CategoryChinese,
		common.CategoryWestern, common.CategoryDessert, common.CategoryOther:
		return common.Category(common.NormalizeName(v))
	}
	// 舊版資料的分類名稱
	switch strings.TrimSpace(v) {
	case "한식", "韓式":
		return common.CategoryKorean
	case "일식", "日式":
		return common.CategoryJapanese
	case "중식", "中式":
		return common.CategoryChinese
	case "양식", "西式":
		return common.CategoryWestern
	case "디저트", "甜點":
		return common.CategoryDessert
	}
	return common.CategoryOther
}

func normalizeDifficulty(v string) common.Difficulty {
	switch common.Difficulty(common.NormalizeName(v)) {
	case common.DifficultyEasy, common.DifficultyMedium,
		common.DifficultyHard, common.DifficultyNormal:
		return common.Difficulty(common.NormalizeName(v))
	}
	switch strings.TrimSpace(v) {
	case "쉬움", "簡單":
		return common.DifficultyEasy
	case "중간", "中等":
		return common.DifficultyMedium
	case "어려움", "困難":
		return common.DifficultyHard
	}
	return common.DifficultyNormal
}

func normalizeDishwashing(v string) common.Dishwashing {
	switch common.Dishwashing(common.NormalizeName(v)) {
	case common.DishwashingLow, common.DishwashingMedium,
		common.DishwashingHigh, common.DishwashingNormal:
		return common.Dishwashing(common.NormalizeName(v))
	}
	switch strings.TrimSpace(v) {
	case "적음", "少":
		return common.DishwashingLow
	case "중간", "中":
		return common.DishwashingMedium
	case "많음", "多":
		return common.DishwashingHigh
	}
	return common.DishwashingNormal
}

// ===================== 型別救援 =====================

// asString 轉成字串表示，nil 回傳空字串
func asString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// stringOr 取字串值，空白時回傳預設值
func stringOr(v interface{}, def string) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

// positiveIntOr 盡力把數字類輸入轉成正整數，失敗或非正數回傳預設值
func positiveIntOr(v interface{}, def int) int {
	n, ok := toInt(v)
	if !ok || n <= 0 {
		return def
	}
	return n
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return int(f), true
		}
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}

func asBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	}
	return false
}

// asStringSlice 轉成字串切片，不是序列型別時回傳空切片
func asStringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		if ss, ok := v.([]string); ok {
			return ss
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// asIngredients 轉成食譜食材切片
// 接受物件（name/amount）或純字串條目，其餘一律忽略
func asIngredients(v interface{}) []common.RecipeIngredient {
	items, ok := v.([]interface{})
	if !ok {
		return []common.RecipeIngredient{}
	}
	out := make([]common.RecipeIngredient, 0, len(items))
	for _, item := range items {
		switch entry := item.(type) {
		case map[string]interface{}:
			out = append(out, common.RecipeIngredient{
				Name:   asString(entry["name"]),
				Amount: asString(entry["amount"]),
			})
		case string:
			out = append(out, common.RecipeIngredient{Name: entry})
		}
	}
	return out
}

func asNutrition(v interface{}) common.Nutrition {
	entry, ok := v.(map[string]interface{})
	if !ok {
		return common.Nutrition{}
	}
	return common.Nutrition{
		Calories:     asFloat(entry["calories"]),
		Carbohydrate: asFloat(entry["carbohydrate"]),
		Protein:      asFloat(entry["protein"]),
		Fat:          asFloat(entry["fat"]),
		Sodium:       asFloat(entry["sodium"]),
	}
}
