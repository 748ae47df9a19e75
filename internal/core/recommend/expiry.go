package recommend

import (
	"time"

	"recipe-recommender/internal/pkg/common"
)

// ExpiringSoonDays 剩餘天數在此以內（含已過期）視為即將到期
const ExpiringSoonDays = 3

// expirationDateLayout 庫存效期字串格式
const expirationDateLayout = "2006-01-02"

// DaysUntilExpiration 計算距離效期的天數
// 雙方都先截斷到當日零點再相減，避免因當下時刻造成差一天的誤差。
// 負數代表已過期，0 代表今天到期；空字串或無法解析時 ok 為 false
func DaysUntilExpiration(expirationDate string, now time.Time) (days int, ok bool) {
	if expirationDate == "" {
		return 0, false
	}
	expiry, err := time.Parse(expirationDateLayout, expirationDate)
	if err != nil {
		return 0, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	expiryDay := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)

	return int(expiryDay.Sub(today) / (24 * time.Hour)), true
}

// ExpiringSoonCount 計算食譜中匹配到庫存且即將到期的食材數
func ExpiringSoonCount(recipe common.Recipe, pantry []common.Ingredient, now time.Time) int {
	count := 0
	for _, ing := range recipe.Ingredients {
		name := common.NormalizeName(ing.Name)
		if name == "" {
			continue
		}
		for _, item := range pantry {
			if common.NormalizeName(item.Name) != name {
				continue
			}
			if days, ok := DaysUntilExpiration(item.ExpirationDate, now); ok && days <= ExpiringSoonDays {
				count++
			}
			break
		}
	}
	return count
}
