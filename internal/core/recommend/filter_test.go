package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-recommender/internal/pkg/common"
)

func intPtr(n int) *int { return &n }

func TestApplyFilters(t *testing.T) {
	quick := common.Recipe{
		ID: "quick", CookingTime: 15, Category: common.CategoryKorean,
		Dishwashing: common.DishwashingLow, LateNightSuitable: true,
		HealthTags: []string{"high-protein"}, RequiredEquipment: []string{"pan"},
	}
	slow := common.Recipe{
		ID: "slow", CookingTime: 90, Category: common.CategoryWestern,
		Dishwashing: common.DishwashingHigh,
		RequiredEquipment: []string{"oven", "mixer"},
	}
	bare := common.Recipe{ID: "bare", CookingTime: 30, Category: common.CategoryOther}

	all := []common.Recipe{quick, slow, bare}

	tests := []struct {
		name    string
		filters common.Filters
		wantIDs []string
	}{
		{"no constraints keep everything", common.Filters{}, []string{"quick", "slow", "bare"}},
		{"max cooking time", common.Filters{MaxCookingTime: intPtr(30)}, []string{"quick", "bare"}},
		{"category set", common.Filters{Categories: []common.Category{common.CategoryKorean}}, []string{"quick"}},
		{"dishwashing set", common.Filters{Dishwashing: []common.Dishwashing{common.DishwashingLow, common.DishwashingHigh}}, []string{"quick", "slow"}},
		{"late night only", common.Filters{LateNightOnly: true}, []string{"quick"}},
		{"health tag overlap", common.Filters{HealthTags: []string{"high-protein", "low-carb"}}, []string{"quick"}},
		{
			// 不需要設備的食譜一律通過，需要的設備必須是可用設備的子集
			"equipment subset",
			common.Filters{AvailableEquipment: []string{"pan", "oven"}},
			[]string{"quick", "bare"},
		},
		{"combined constraints", common.Filters{MaxCookingTime: intPtr(60), Categories: []common.Category{common.CategoryKorean, common.CategoryOther}}, []string{"quick", "bare"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(all, tt.filters)
			ids := make([]string, len(got))
			for i, r := range got {
				ids[i] = r.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplyFiltersDishwashingMissingValue(t *testing.T) {
	noValue := common.Recipe{ID: "n", CookingTime: 10}
	got := ApplyFilters([]common.Recipe{noValue}, common.Filters{
		Dishwashing: []common.Dishwashing{common.DishwashingLow},
	})
	assert.Empty(t, got)
}

func TestApplyFiltersIdempotent(t *testing.T) {
	all := []common.Recipe{
		{ID: "a", CookingTime: 10, Category: common.CategoryKorean, Dishwashing: common.DishwashingLow},
		{ID: "b", CookingTime: 45, Category: common.CategoryWestern, Dishwashing: common.DishwashingHigh},
		{ID: "c", CookingTime: 20, Category: common.CategoryKorean, Dishwashing: common.DishwashingMedium},
	}
	filters := common.Filters{
		MaxCookingTime: intPtr(30),
		Categories:     []common.Category{common.CategoryKorean},
	}

	once := ApplyFilters(all, filters)
	twice := ApplyFilters(once, filters)

	require.Equal(t, once, twice)
}

func TestApplyFiltersPreservesOrder(t *testing.T) {
	all := []common.Recipe{
		{ID: "3", CookingTime: 5},
		{ID: "1", CookingTime: 5},
		{ID: "2", CookingTime: 5},
	}
	got := ApplyFilters(all, common.Filters{MaxCookingTime: intPtr(10)})
	require.Len(t, got, 3)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
	assert.Equal(t, "2", got[2].ID)
}
