package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-recommender/internal/pkg/common"
)

func TestRankByExpiringThenMatch(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	pantry := []common.Ingredient{
		{ID: "1", Name: "milk", ExpirationDate: "2025-03-11"},  // 快過期
		{ID: "2", Name: "egg", ExpirationDate: "2025-04-01"},   // 還很久
		{ID: "3", Name: "flour", ExpirationDate: "2025-04-01"},
	}

	usesExpiring := recipeWithIngredients("milk")
	usesExpiring.ID = "expiring"
	highMatch := recipeWithIngredients("egg", "flour")
	highMatch.ID = "high-match"
	lowMatch := recipeWithIngredients("egg", "flour", "sugar", "butter")
	lowMatch.ID = "low-match"

	got := Rank([]common.Recipe{lowMatch, highMatch, usesExpiring}, pantry, now)

	require.Len(t, got, 3)
	// 使用快過期食材的食譜優先於純命中率
	assert.Equal(t, "expiring", got[0].ID)
	assert.Equal(t, "high-match", got[1].ID)
	assert.Equal(t, "low-match", got[2].ID)
}

func TestRankStable(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	pantry := pantryOf("egg")

	a := recipeWithIngredients("egg")
	a.ID = "a"
	b := recipeWithIngredients("egg")
	b.ID = "b"
	c := recipeWithIngredients("egg")
	c.ID = "c"

	// 分數完全相同時保持輸入順序
	got := Rank([]common.Recipe{b, c, a}, pantry, now)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	pantry := pantryOf("egg", "flour")

	low := recipeWithIngredients("egg", "sugar", "butter", "salt")
	low.ID = "low"
	high := recipeWithIngredients("egg", "flour")
	high.ID = "high"

	input := []common.Recipe{low, high}
	got := Rank(input, pantry, now)

	assert.Equal(t, "low", input[0].ID)
	assert.Equal(t, "high", input[1].ID)
	require.Len(t, got, 2)
	assert.Equal(t, "high", got[0].ID)
}

func TestRankEmptyPantryKeepsOrder(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	a := recipeWithIngredients("egg")
	a.ID = "a"
	b := recipeWithIngredients("flour")
	b.ID = "b"

	got := Rank([]common.Recipe{a, b}, nil, now)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}
