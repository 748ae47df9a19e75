package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-recommender/internal/pkg/common"
)

func TestDaysUntilExpiration(t *testing.T) {
	// 下午三點出發，確認時刻不影響天數計算
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string
		wantDays int
		wantOK   bool
	}{
		{"empty date", "", 0, false},
		{"unparseable date", "not-a-date", 0, false},
		{"expires today", "2025-03-10", 0, true},
		{"expired yesterday", "2025-03-09", -1, true},
		{"expires tomorrow", "2025-03-11", 1, true},
		{"expires in three days", "2025-03-13", 3, true},
		{"expires next month", "2025-04-10", 31, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DaysUntilExpiration(tt.date, now)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantDays, days)
			}
		})
	}
}

func TestExpiringSoonCount(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	recipe := recipeWithIngredients("tomato", "egg", "flour")

	tests := []struct {
		name   string
		pantry []common.Ingredient
		want   int
	}{
		{
			name: "expired item still counts",
			pantry: []common.Ingredient{
				{ID: "1", Name: "tomato", ExpirationDate: "2025-03-09"},
			},
			want: 1,
		},
		{
			name: "within three days counts",
			pantry: []common.Ingredient{
				{ID: "1", Name: "tomato", ExpirationDate: "2025-03-13"},
				{ID: "2", Name: "egg", ExpirationDate: "2025-03-20"},
			},
			want: 1,
		},
		{
			name: "untracked expiration never counts",
			pantry: []common.Ingredient{
				{ID: "1", Name: "tomato"},
				{ID: "2", Name: "egg", ExpirationDate: "bogus"},
			},
			want: 0,
		},
		{
			name: "unmatched pantry item ignored",
			pantry: []common.Ingredient{
				{ID: "1", Name: "pork", ExpirationDate: "2025-03-10"},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpiringSoonCount(recipe, tt.pantry, now))
		})
	}
}
