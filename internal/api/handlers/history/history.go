package history

import (
	"net/http"

	"recipe-recommender/internal/api/handlers"
	"recipe-recommender/internal/core/catalog"
	pantrySvc "recipe-recommender/internal/core/pantry"

	"github.com/gin-gonic/gin"
)

// Handler 收藏與瀏覽紀錄的 HTTP 處理器
type Handler struct {
	history *pantrySvc.HistoryService
	catalog *catalog.Service
}

// NewHandler 創建紀錄處理器
func NewHandler(history *pantrySvc.HistoryService, catalogService *catalog.Service) *Handler {
	return &Handler{
		history: history,
		catalog: catalogService,
	}
}

// ToggleFavorite 切換收藏狀態
func (h *Handler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.catalog.Get(c.Request.Context(), id); err != nil {
		handlers.WriteError(c, err)
		return
	}

	favorited := h.history.ToggleFavorite(id)
	c.JSON(http.StatusOK, gin.H{
		"recipe_id": id,
		"favorited": favorited,
	})
}

// MarkViewed 記錄一次瀏覽
func (h *Handler) MarkViewed(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.catalog.Get(c.Request.Context(), id); err != nil {
		handlers.WriteError(c, err)
		return
	}

	h.history.MarkViewed(id)
	c.JSON(http.StatusOK, h.history.History())
}

// Get 回傳目前的紀錄
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.history.History())
}
