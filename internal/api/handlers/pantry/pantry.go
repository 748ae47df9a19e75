package pantry

import (
	"net/http"

	"recipe-recommender/internal/api/handlers"
	pantrySvc "recipe-recommender/internal/core/pantry"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 庫存食材的 HTTP 處理器
type Handler struct {
	pantry *pantrySvc.Service
}

// NewHandler 創建庫存處理器
func NewHandler(pantry *pantrySvc.Service) *Handler {
	return &Handler{pantry: pantry}
}

// List 回傳全部庫存食材
func (h *Handler) List(c *gin.Context) {
	items, err := h.pantry.List(c.Request.Context())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ingredients": items,
		"count":       len(items),
	})
}

// Add 新增庫存食材
func (h *Handler) Add(c *gin.Context) {
	var ingredient common.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		handlers.WriteError(c, common.NewValidationError("無法解析食材內容"))
		return
	}

	added, err := h.pantry.Add(c.Request.Context(), ingredient)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, added)
}

// Update 更新庫存食材
func (h *Handler) Update(c *gin.Context) {
	var ingredient common.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		handlers.WriteError(c, common.NewValidationError("無法解析食材內容"))
		return
	}
	ingredient.ID = c.Param("id")

	updated, err := h.pantry.Update(c.Request.Context(), ingredient)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Remove 刪除庫存食材
func (h *Handler) Remove(c *gin.Context) {
	if err := h.pantry.Remove(c.Request.Context(), c.Param("id")); err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
