package recipes

import (
	"net/http"

	"recipe-recommender/internal/api/handlers"
	aiSvc "recipe-recommender/internal/core/ai/service"
	"recipe-recommender/internal/core/catalog"
	pantrySvc "recipe-recommender/internal/core/pantry"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 食譜目錄的 HTTP 處理器
type Handler struct {
	catalog *catalog.Service
	pantry  *pantrySvc.Service
	ai      *aiSvc.Service
}

// NewHandler 創建食譜處理器
// ai 允許為 nil（生成功能關閉），此時 Generate 回 503
func NewHandler(catalogService *catalog.Service, pantry *pantrySvc.Service, ai *aiSvc.Service) *Handler {
	return &Handler{
		catalog: catalogService,
		pantry:  pantry,
		ai:      ai,
	}
}

// List 回傳目錄中全部食譜
func (h *Handler) List(c *gin.Context) {
	recipes, err := h.catalog.All(c.Request.Context())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

// Get 回傳單一食譜
func (h *Handler) Get(c *gin.Context) {
	recipe, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Submit 使用者投稿食譜
// 收任意形狀的 JSON，正規化後入庫
func (h *Handler) Submit(c *gin.Context) {
	var raw map[string]interface{}
	if err := common.DecodeJSON(c.Request.Body, &raw); err != nil {
		handlers.WriteError(c, common.NewValidationError("無法解析食譜內容"))
		return
	}

	recipe, err := h.catalog.AddUser(c.Request.Context(), raw)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// Generate 根據目前庫存生成一份 AI 食譜並入庫
func (h *Handler) Generate(c *gin.Context) {
	if h.ai == nil {
		handlers.WriteError(c, common.ErrAIServiceError)
		return
	}

	ctx := c.Request.Context()
	pantry, err := h.pantry.List(ctx)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	raw, err := h.ai.GenerateRecipe(ctx, pantry)
	if err != nil {
		if common.IsValidationError(err) {
			handlers.WriteError(c, err)
			return
		}
		common.LogError("AI 食譜生成失敗", zap.Error(err))
		handlers.WriteError(c, common.ErrAIServiceError)
		return
	}

	recipe, err := h.catalog.AddGenerated(ctx, raw)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}
