package recommend

import (
	"sort"
	"strings"

	"recipe-recommender/internal/pkg/common"
)

// defaultAliasTable 同義詞表：標準名稱 → 變體
// 原始資料集混雜中/韓/英文食材名稱，先統一成標準名稱再比對
var defaultAliasTable = map[string][]string{
	"egg":         {"egg", "雞蛋", "蛋", "계란", "달걀"},
	"tomato":      {"tomato", "番茄", "西紅柿", "토마토"},
	"onion":       {"onion", "洋蔥", "양파"},
	"garlic":      {"garlic", "蒜", "大蒜", "마늘"},
	"potato":      {"potato", "馬鈴薯", "土豆", "감자"},
	"carrot":      {"carrot", "紅蘿蔔", "胡蘿蔔", "당근"},
	"cabbage":     {"cabbage", "高麗菜", "양배추"},
	"mushroom":    {"mushroom", "蘑菇", "香菇", "버섯", "양송이"},
	"chicken":     {"chicken", "雞肉", "雞腿", "雞胸", "닭고기", "닭", "닭가슴살"},
	"pork":        {"pork", "豬肉", "五花肉", "돼지고기", "삼겹살"},
	"beef":        {"beef", "牛肉", "소고기", "갈비"},
	"tofu":        {"tofu", "豆腐", "두부"},
	"kimchi":      {"kimchi", "泡菜", "김치"},
	"rice":        {"rice", "米", "飯", "쌀", "밥"},
	"bread":       {"bread", "麵包", "吐司", "식빵", "빵"},
	"milk":        {"milk", "牛奶", "우유"},
	"butter":      {"butter", "奶油", "버터"},
	"cheese":      {"cheese", "起司", "치즈"},
	"bacon":       {"bacon", "培根", "베이컨"},
	"green onion": {"green onion", "蔥", "大蔥", "파", "대파", "쪽파"},
	"pepper":      {"pepper", "辣椒", "고추", "청양고추"},
	"lettuce":     {"lettuce", "萵苣", "生菜", "양상추", "상추"},
	"apple":       {"apple", "蘋果", "사과"},
	"banana":      {"banana", "香蕉", "바나나"},
	"strawberry":  {"strawberry", "草莓", "딸기"},
	"pasta":       {"pasta", "義大利麵", "스파게티", "파스타"},
	"rice cake":   {"rice cake", "年糕", "떡", "떡볶이떡", "가래떡"},
}

// AliasMatcher 同義詞比對策略
// 名稱先映射到標準名稱，相等或互相包含都視為比對成功
// 只用於原始資料集匹配，不是主要的庫存比對策略
type AliasMatcher struct {
	canonical map[string]string // 變體（正規化後）→ 標準名稱
	variants  []string          // 變體的固定掃描順序，確保輸出可重現
}

// NewAliasMatcher 以內建同義詞表創建比對器
func NewAliasMatcher() *AliasMatcher {
	return NewAliasMatcherWithTable(defaultAliasTable)
}

// NewAliasMatcherWithTable 以自訂同義詞表創建比對器
func NewAliasMatcherWithTable(table map[string][]string) *AliasMatcher {
	canonical := make(map[string]string)
	for standard, variants := range table {
		for _, v := range variants {
			canonical[common.NormalizeName(v)] = standard
		}
	}
	ordered := make([]string, 0, len(canonical))
	for v := range canonical {
		ordered = append(ordered, v)
	}
	sort.Strings(ordered)
	return &AliasMatcher{canonical: canonical, variants: ordered}
}

// Canonicalize 將食材名稱映射到標準名稱，表中沒有就原樣返回
func (m *AliasMatcher) Canonicalize(name string) string {
	norm := common.NormalizeName(name)
	if norm == "" {
		return ""
	}
	if standard, ok := m.canonical[norm]; ok {
		return standard
	}
	// 變體可能只出現在名稱的一部分，例如「新鮮番茄」
	for _, variant := range m.variants {
		if strings.Contains(norm, variant) || strings.Contains(variant, norm) {
			return m.canonical[variant]
		}
	}
	return norm
}

// Matches 實現 Matcher 介面
func (m *AliasMatcher) Matches(recipeIngredient string, pantryNames []string) bool {
	target := m.Canonicalize(recipeIngredient)
	if target == "" {
		return false
	}
	for _, p := range pantryNames {
		cand := m.Canonicalize(p)
		if cand == "" {
			continue
		}
		if cand == target || strings.Contains(cand, target) || strings.Contains(target, cand) {
			return true
		}
	}
	return false
}
