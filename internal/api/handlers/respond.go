package handlers

import (
	"net/http"

	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WriteError 把內部錯誤轉成統一的 JSON 錯誤響應
// CustomError 帶自己的狀態碼與代碼，驗證錯誤一律 400，其餘當 500 處理
func WriteError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *common.CustomError:
		c.JSON(e.Status, common.ErrorResponse{
			Code:    e.Code,
			Message: e.Message,
		})
	case *common.ValidationError:
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: e.Error(),
		})
	default:
		common.LogError("未預期的錯誤",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Code:    common.ErrCodeInternalError,
			Message: "服務器內部錯誤",
		})
	}
}
