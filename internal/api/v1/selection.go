package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hipphone/internal/model"
	"hipphone/internal/parser"
	"hipphone/internal/service/calculator"
	"hipphone/internal/service/catalog"
	"hipphone/internal/service/session"
)

// UpdateSelectionRequest 选择请求；value 为空表示取消该字段（下游一并清空）
type UpdateSelectionRequest struct {
	Field model.Field `json:"field"`
	Value string      `json:"value"`
}

// UpdateSelection 设置级联选择
// PATCH /api/sessions/:id/selection
func (h *Handler) UpdateSelection(c *gin.Context) {
	var req UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}
	if !model.IsSelectionField(req.Field) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 선택 항목: " + string(req.Field)})
		return
	}

	// 可选值校验在会话锁内进行，并发请求也不会留下无法匹配的选择
	value := parser.CollapseSpaces(req.Value)
	sess, err := h.sessions.Select(c.Param("id"), req.Field, value, func(cur session.Session) error {
		if cur.Catalog == nil {
			return catalog.ErrNoSource
		}
		return cur.Catalog.CheckChoice(req.Field, value, cur.Selection)
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(sess))
}

// ResetSelection 清空全部选择（折扣保留）
// DELETE /api/sessions/:id/selection
func (h *Handler) ResetSelection(c *gin.Context) {
	sess, err := h.sessions.ResetSelection(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(sess))
}

// UpdateDiscountRequest 门店折扣请求
type UpdateDiscountRequest struct {
	StoreDiscount int64 `json:"storeDiscount"`
}

// UpdateDiscount 设置门店折扣（负数按 0 处理）
// PATCH /api/sessions/:id/discount
func (h *Handler) UpdateDiscount(c *gin.Context) {
	var req UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	sess, err := h.sessions.SetStoreDiscount(c.Param("id"), calculator.ClampDiscount(req.StoreDiscount))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(sess))
}
