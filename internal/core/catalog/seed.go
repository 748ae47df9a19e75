package catalog

import (
	"recipe-recommender/internal/pkg/common"
)

// SeedRecipes 內建種子食譜
// 服務啟動時寫進目錄，讓空資料庫也有東西可以推薦
func SeedRecipes() []common.Recipe {
	return []common.Recipe{
		{
			ID:          "seed-kimchi-fried-rice",
			Name:        "泡菜炒飯",
			Description: "酸辣開胃的經典韓式炒飯，十五分鐘上桌。",
			CookingTime: 15,
			PrepTime:    5,
			Servings:    2,
			Difficulty:  common.DifficultyEasy,
			Category:    common.CategoryKorean,
			Dishwashing: common.DishwashingLow,
			LateNightSuitable: true,
			Ingredients: []common.RecipeIngredient{
				{Name: "白飯", Amount: "2 碗"},
				{Name: "泡菜", Amount: "150g"},
				{Name: "雞蛋", Amount: "2 顆"},
				{Name: "蔥", Amount: "1 根"},
			},
			Steps: []string{
				"泡菜切碎，蔥切成蔥花",
				"熱鍋下油，炒香泡菜",
				"加入白飯拌炒均勻",
				"起鍋前煎一顆半熟蛋放上",
			},
			Image:     "https://source.unsplash.com/800x600/?kimchi,fried-rice",
			Tips:      []string{"用隔夜飯炒起來粒粒分明"},
			Nutrition: common.Nutrition{Calories: 520, Carbohydrate: 78, Protein: 14, Fat: 16, Sodium: 980},
			Author:    "家常食譜",
			Origin:    common.OriginSeed,
		},
		{
			ID:          "seed-egg-drop-soup",
			Name:        "蛋花湯",
			Description: "清爽簡單的湯品，適合任何時段。",
			CookingTime: 10,
			PrepTime:    5,
			Servings:    2,
			Difficulty:  common.DifficultyEasy,
			Category:    common.CategoryChinese,
			Dishwashing: common.DishwashingLow,
			LateNightSuitable: true,
			HealthTags:  []string{"low-calorie"},
			Ingredients: []common.RecipeIngredient{
				{Name: "雞蛋", Amount: "2 顆"},
				{Name: "蔥", Amount: "1 根"},
				{Name: "高湯", Amount: "500ml"},
			},
			Steps: []string{
				"高湯煮滾",
				"蛋液打散，緩緩淋入湯中",
				"撒上蔥花即可",
			},
			Image:     "https://source.unsplash.com/800x600/?egg,soup",
			Nutrition: common.Nutrition{Calories: 160, Carbohydrate: 4, Protein: 12, Fat: 10, Sodium: 620},
			Author:    "家常食譜",
			Origin:    common.OriginSeed,
		},
		{
			ID:          "seed-doenjang-jjigae",
			Name:        "大醬湯",
			Description: "韓式味噌燉湯，豆腐與時蔬的樸實滋味。",
			CookingTime: 30,
			PrepTime:    10,
			Servings:    3,
			Difficulty:  common.DifficultyMedium,
			Category:    common.CategoryKorean,
			Dishwashing: common.DishwashingMedium,
			Ingredients: []common.RecipeIngredient{
				{Name: "大醬", Amount: "2 大匙"},
				{Name: "豆腐", Amount: "1 盒"},
				{Name: "櫛瓜", Amount: "半條"},
				{Name: "洋蔥", Amount: "半顆"},
				{Name: "馬鈴薯", Amount: "1 顆"},
			},
			Steps: []string{
				"蔬菜切塊",
				"水滾後溶入大醬",
				"依序下馬鈴薯、洋蔥、櫛瓜",
				"最後放豆腐煮五分鐘",
			},
			Image:     "https://source.unsplash.com/800x600/?korean,stew",
			Tips:      []string{"加一點辣椒粉風味更足"},
			Nutrition: common.Nutrition{Calories: 280, Carbohydrate: 24, Protein: 18, Fat: 12, Sodium: 1150},
			Author:    "家常食譜",
			Origin:    common.OriginSeed,
		},
		{
			ID:          "seed-carbonara",
			Name:        "奶油培根義大利麵",
			Description: "濃郁滑順的經典義式麵點。",
			CookingTime: 25,
			PrepTime:    10,
			Servings:    2,
			Difficulty:  common.DifficultyMedium,
			Category:    common.CategoryWestern,
			Dishwashing: common.DishwashingMedium,
			RequiredEquipment: []string{"深鍋"},
			Ingredients: []common.RecipeIngredient{
				{Name: "義大利麵", Amount: "200g"},
				{Name: "培根", Amount: "100g"},
				{Name: "雞蛋", Amount: "2 顆"},
				{Name: "起司", Amount: "50g"},
			},
			Steps: []string{
				"麵條煮至彈牙",
				"培根煎至微焦",
				"離火後拌入蛋液與起司",
				"用煮麵水調整濃稠度",
			},
			Image:     "https://source.unsplash.com/800x600/?carbonara",
			Nutrition: common.Nutrition{Calories: 780, Carbohydrate: 82, Protein: 32, Fat: 36, Sodium: 1320},
			Author:    "家常食譜",
			Origin:    common.OriginSeed,
		},
		{
			ID:          "seed-tamagoyaki",
			Name:        "玉子燒",
			Description: "層層捲起的日式甜蛋捲，早餐便當兩相宜。",
			CookingTime: 15,
			PrepTime:    5,
			Servings:    2,
			Difficulty:  common.DifficultyHard,
			Category:    common.CategoryJapanese,
			Dishwashing: common.DishwashingLow,
			HealthTags:  []string{"high-protein"},
			RequiredEquipment: []string{"玉子燒鍋"},
			Ingredients: []common.RecipeIngredient{
				{Name: "雞蛋", Amount: "4 顆"},
				{Name: "味醂", Amount: "1 大匙"},
				{Name: "糖", Amount: "1 小匙"},
			},
			Steps: []string{
				"蛋液與調味料拌勻過篩",
				"薄薄倒一層蛋液",
				"半熟時捲起推至一側",
				"重複至蛋液用完",
			},
			Image:     "https://source.unsplash.com/800x600/?tamagoyaki",
			Tips:      []string{"全程小火才不會焦"},
			Nutrition: common.Nutrition{Calories: 240, Carbohydrate: 6, Protein: 20, Fat: 15, Sodium: 380},
			Author:    "家常食譜",
			Origin:    common.OriginSeed,
		},
		{
			ID:          "seed-fruit-pancake",
			Name:        "水果鬆餅",
			Description: "鬆軟香甜的假日早午餐甜點。",
			CookingTime: 20,
			PrepTime:    10,
			Servings:    2,
			Difficulty:  common.DifficultyEasy,
			Category:    common.CategoryDessert,
			Dishwashing: common.DishwashingHigh,
			Ingredients: []common.RecipeIngredient{
				{Name: "麵粉", Amount: "150g"},
				{Name: "雞蛋", Amount: "1 顆"},
				{Name: "牛奶", Amount: "150ml"},
				{Name: "奶油", Amount: "20g"},
				{Name: "草莓", Amount: "適量"},
			},
			Steps: []string{
				"乾濕材料分別拌勻後混合",
				"小火煎至表面起泡翻面",
				"疊上水果與奶油",
			},
			Image:     "https://source.unsplash.com/800x600/?pancake",
			Nutrition: common.Nutrition{Calories: 460, Carbohydrate: 64, Protein: 12, Fat: 18, Sodium: 300},
			Author:    "家常食譜",
			Origin:    common.OriginSeed,
		},
	}
}
