package common

import (
	"strings"
)

// Ingredient 使用者持有的食材（冰箱庫存項目）
type Ingredient struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Quantity       string `json:"quantity,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"` // 格式 2006-01-02，空字串表示不追蹤效期
}

// RecipeIngredient 食譜所需的食材
type RecipeIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
}

// Origin 食譜來源分類
// 取代舊版靠 author 哨兵值與 id 前綴（"db-"、"ai-"）判斷來源的做法，
// 門檻豁免等規則一律只讀這個欄位
type Origin string

const (
	OriginSeed   Origin = "seed"   // 內建種子食譜
	OriginUser   Origin = "user"   // 使用者投稿
	OriginServer Origin = "server" // 後端資料庫同步（舊 id 前綴 "db-"）
	OriginAI     Origin = "ai"     // AI 生成（舊 id 前綴 "ai-"）
)

// Category 料理分類
type Category string

const (
	CategoryKorean   Category = "korean"
	CategoryJapanese Category = "japanese"
	CategoryChinese  Category = "chinese"
	CategoryWestern  Category = "western"
	CategoryDessert  Category = "dessert"
	CategoryOther    Category = "other"
)

// Difficulty 難易度
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyNormal Difficulty = "normal" // 舊資料的預設值
)

// Dishwashing 洗碗量
type Dishwashing string

const (
	DishwashingLow    Dishwashing = "low"
	DishwashingMedium Dishwashing = "medium"
	DishwashingHigh   Dishwashing = "high"
	DishwashingNormal Dishwashing = "normal"
)

// Nutrition 營養成分
type Nutrition struct {
	Calories     float64 `json:"calories"`
	Carbohydrate float64 `json:"carbohydrate"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Sodium       float64 `json:"sodium"`
}

// Recipe 食譜
// 評分用途視為不可變：編輯產生新的邏輯版本
type Recipe struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	CookingTime        int                `json:"cooking_time"` // 分鐘
	PrepTime           int                `json:"prep_time,omitempty"`
	Servings           int                `json:"servings,omitempty"`
	Difficulty         Difficulty         `json:"difficulty"`
	Category           Category           `json:"category"`
	Dishwashing        Dishwashing        `json:"dishwashing"`
	LateNightSuitable  bool               `json:"late_night_suitable"`
	HealthTags         []string           `json:"health_tags,omitempty"`
	RequiredEquipment  []string           `json:"required_equipment,omitempty"`
	AvailableEquipment []string           `json:"available_equipment,omitempty"`
	Ingredients        []RecipeIngredient `json:"ingredients"`
	Steps              []string           `json:"steps"`
	Image              string             `json:"image,omitempty"`
	Tips               []string           `json:"tips,omitempty"`
	Nutrition          Nutrition          `json:"nutrition"`
	History            string             `json:"history,omitempty"`
	Author             string             `json:"author,omitempty"`
	Origin             Origin             `json:"origin"`
	Likes              int                `json:"likes"`
	Rating             float64            `json:"rating"`
	CommentCount       int                `json:"comment_count"`
	IsUserRecipe       bool               `json:"is_user_recipe"`
	CreatedAt          string             `json:"created_at,omitempty"`
}

// Filters 食譜篩選條件，空集合代表不限制
type Filters struct {
	MaxCookingTime     *int          `json:"max_cooking_time,omitempty"`
	Categories         []Category    `json:"categories,omitempty"`
	Dishwashing        []Dishwashing `json:"dishwashing,omitempty"`
	LateNightOnly      bool          `json:"late_night_only"`
	HealthTags         []string      `json:"health_tags,omitempty"`
	RequiredEquipment  []string      `json:"required_equipment,omitempty"` // 保留欄位，目前不參與篩選
	AvailableEquipment []string      `json:"available_equipment,omitempty"`
}

// History 使用者瀏覽紀錄
// RecentlyViewed 由呼叫端維持最新在前、最多 20 筆
type History struct {
	Favorites      []string `json:"favorites"`
	RecentlyViewed []string `json:"recently_viewed"`
}

// ViewMode 清單檢視模式
type ViewMode string

const (
	ViewModeAll       ViewMode = "all"
	ViewModeFavorites ViewMode = "favorites"
	ViewModeRecent    ViewMode = "recent"
)

// NormalizeName 統一食材名稱比對格式（小寫 + 去除前後空白）
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FormatIngredients 格式化食材列表（組 prompt 用）
func FormatIngredients(ingredients []Ingredient) string {
	var sb strings.Builder
	for _, ing := range ingredients {
		sb.WriteString("- " + ing.Name)
		if ing.Quantity != "" {
			sb.WriteString("：" + ing.Quantity)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
