package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-recommender/internal/core/catalog"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DedupWindow: time.Nanosecond,
	}
	cfg.App.Version = "test"
	cfg.Generate.DebounceWindow = 10 * time.Millisecond

	router, err := SetupRouter(cfg, nil)
	require.NoError(t, err)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestPantryCRUD(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/pantry/ingredients", common.Ingredient{
		Name:           "雞蛋",
		Quantity:       "6 顆",
		ExpirationDate: "2026-09-10",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var added common.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	assert.NotEmpty(t, added.ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/pantry/ingredients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Ingredients []common.Ingredient `json:"ingredients"`
		Count       int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, 1, listResp.Count)

	added.Quantity = "2 顆"
	w = doJSON(t, router, http.MethodPut, "/api/v1/pantry/ingredients/"+added.ID, added)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/pantry/ingredients/"+added.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/pantry/ingredients/"+added.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPantryValidation(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/pantry/ingredients", common.Ingredient{
		Name: "  ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, common.ErrCodeInvalidRequest, errResp.Code)
}

func TestRecipesListIncludesSeeds(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []common.Recipe `json:"recipes"`
		Count   int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(catalog.SeedRecipes()), resp.Count)
}

func TestSubmitRecipeNormalized(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name":         "阿嬤的滷肉飯",
		"category":     "중식", // 舊版分類名稱也要吃得下
		"cooking_time": "45",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var recipe common.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.NotEmpty(t, recipe.ID)
	assert.Equal(t, common.OriginUser, recipe.Origin)
	assert.Equal(t, common.CategoryChinese, recipe.Category)
	assert.Equal(t, 45, recipe.CookingTime)
}

func TestGenerateDisabledReturns503(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/generate", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRecommendEmptyPantryShowsEverything(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recommend", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []common.Recipe `json:"recipes"`
		Count   int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(catalog.SeedRecipes()), resp.Count)
}

func TestRecommendFiltersAndThreshold(t *testing.T) {
	router := testRouter(t)

	// 放兩樣食材，小庫存門檻為 0，任何有命中的食譜都會出現
	for _, name := range []string{"雞蛋", "白飯"} {
		w := doJSON(t, router, http.MethodPost, "/api/v1/pantry/ingredients", common.Ingredient{Name: name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/recommend", map[string]interface{}{
		"filters": map[string]interface{}{
			"max_cooking_time": 20,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []common.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Recipes)
	for _, recipe := range resp.Recipes {
		assert.LessOrEqual(t, recipe.CookingTime, 20)
	}
}

func TestSections(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/recommend/sections", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sections struct {
		TimeSlot       string        `json:"time_slot"`
		TimeBased      []interface{} `json:"time_based"`
		AlmostMakeable []interface{} `json:"almost_makeable"`
		Personalized   []interface{} `json:"personalized"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sections))
	assert.NotEmpty(t, sections.TimeSlot)
	assert.LessOrEqual(t, len(sections.TimeBased), 3)
	assert.LessOrEqual(t, len(sections.Personalized), 3)
}

func TestHistoryEndpoints(t *testing.T) {
	router := testRouter(t)

	seedID := catalog.SeedRecipes()[0].ID

	w := doJSON(t, router, http.MethodPost, "/api/v1/history/favorites/"+seedID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var toggle struct {
		Favorited bool `json:"favorited"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggle))
	assert.True(t, toggle.Favorited)

	w = doJSON(t, router, http.MethodPost, "/api/v1/history/viewed/"+seedID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history common.History
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Equal(t, []string{seedID}, history.Favorites)
	assert.Equal(t, []string{seedID}, history.RecentlyViewed)

	// 不存在的食譜
	w = doJSON(t, router, http.MethodPost, "/api/v1/history/favorites/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
