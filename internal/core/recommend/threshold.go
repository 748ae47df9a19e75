package recommend

import (
	"recipe-recommender/internal/pkg/common"
)

// MinMatchPercentage 依庫存食材數量決定最低匹配率門檻
// 食材越多，能容忍的低匹配食譜越少
func MinMatchPercentage(pantrySize int) int {
	switch {
	case pantrySize <= 2:
		return 0
	case pantrySize <= 4:
		return 30
	case pantrySize <= 6:
		return 40
	default:
		return 50
	}
}

// PassesThreshold 判斷食譜是否通過匹配率門檻
// 匹配率 0% 一律不通過；AI 生成與後端同步的食譜只要匹配率大於 0 就通過，
// 不受庫存規模門檻限制；其餘食譜必須達到 minThreshold
func PassesThreshold(recipe common.Recipe, matchPercentage, minThreshold int) bool {
	if matchPercentage == 0 {
		return false
	}
	if recipe.Origin == common.OriginAI || recipe.Origin == common.OriginServer {
		return true
	}
	return matchPercentage >= minThreshold
}
