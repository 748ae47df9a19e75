package recommend

import (
	"context"
	"net/http"
	"time"

	"recipe-recommender/internal/api/handlers"
	"recipe-recommender/internal/core/catalog"
	pantrySvc "recipe-recommender/internal/core/pantry"
	recommendCore "recipe-recommender/internal/core/recommend"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 推薦查詢的 HTTP 處理器
// 每次請求都重新讀目錄、庫存與紀錄，推薦引擎本身不持有狀態
type Handler struct {
	engine  *recommendCore.Service
	catalog *catalog.Service
	pantry  *pantrySvc.Service
	history *pantrySvc.HistoryService
}

// NewHandler 創建推薦處理器
func NewHandler(engine *recommendCore.Service, catalogService *catalog.Service, pantry *pantrySvc.Service, history *pantrySvc.HistoryService) *Handler {
	return &Handler{
		engine:  engine,
		catalog: catalogService,
		pantry:  pantry,
		history: history,
	}
}

// Recommend 計算首頁顯示清單
// 請求體是 Query（篩選、檢視模式、關鍵字），空請求體代表不限制
func (h *Handler) Recommend(c *gin.Context) {
	var query recommendCore.Query
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&query); err != nil {
			handlers.WriteError(c, common.NewValidationError("無法解析查詢條件"))
			return
		}
	}

	ctx := c.Request.Context()
	recipes, pantry, err := h.load(ctx)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	display := h.engine.DisplayRecipes(recipes, pantry, h.history.History(), query, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"recipes": display,
		"count":   len(display),
	})
}

// Sections 計算三個智慧推薦區塊
func (h *Handler) Sections(c *gin.Context) {
	ctx := c.Request.Context()
	recipes, pantry, err := h.load(ctx)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	sections := h.engine.SmartSections(recipes, pantry, h.history.History(), time.Now())

	c.JSON(http.StatusOK, sections)
}

func (h *Handler) load(ctx context.Context) ([]common.Recipe, []common.Ingredient, error) {
	recipes, err := h.catalog.All(ctx)
	if err != nil {
		return nil, nil, err
	}
	pantry, err := h.pantry.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return recipes, pantry, nil
}
