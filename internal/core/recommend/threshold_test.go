package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recipe-recommender/internal/pkg/common"
)

func TestMinMatchPercentage(t *testing.T) {
	tests := []struct {
		pantrySize int
		want       int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 30},
		{4, 30},
		{5, 40},
		{6, 40},
		{7, 50},
		{20, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinMatchPercentage(tt.pantrySize), "pantry size %d", tt.pantrySize)
	}
}

func TestPassesThreshold(t *testing.T) {
	tests := []struct {
		name       string
		origin     common.Origin
		pct        int
		pantrySize int
		want       bool
	}{
		// 零命中無論來源一律排除
		{"zero match user", common.OriginUser, 0, 10, false},
		{"zero match ai", common.OriginAI, 0, 10, false},
		{"zero match server", common.OriginServer, 0, 10, false},

		// AI 與伺服器食譜不受門檻限制
		{"ai exempt from threshold", common.OriginAI, 5, 10, true},
		{"server exempt from threshold", common.OriginServer, 5, 10, true},
		{"user fails same percentage", common.OriginUser, 5, 10, false},

		// 庫存 5 項時門檻為 40%
		{"below threshold excluded", common.OriginSeed, 25, 5, false},
		{"below threshold excluded at 30", common.OriginSeed, 30, 5, false},
		{"at threshold included", common.OriginSeed, 40, 5, true},
		{"above threshold included", common.OriginSeed, 55, 5, true},

		// 小庫存門檻為 0，任何非零命中都通過
		{"tiny pantry passes", common.OriginUser, 10, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := common.Recipe{ID: "r", Origin: tt.origin}
			assert.Equal(t, tt.want, PassesThreshold(r, tt.pct, MinMatchPercentage(tt.pantrySize)))
		})
	}
}

func TestThresholdMonotonicity(t *testing.T) {
	// 門檻隨庫存數量遞增
	prev := 0
	for size := 0; size <= 30; size++ {
		min := MinMatchPercentage(size)
		assert.GreaterOrEqual(t, min, prev, "threshold decreased at pantry size %d", size)
		prev = min
	}
}
