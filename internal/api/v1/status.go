package v1

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"hipphone/internal/store"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	DefaultFile      string `json:"defaultFile"`
	DefaultAvailable bool   `json:"defaultAvailable"` // 默认文件是否存在
	Sessions         int    `json:"sessions"`
	TieBreak         string `json:"tieBreak"`
	DiscountStep     int64  `json:"discountStep"`
	HistoryEnabled   bool   `json:"historyEnabled"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	available := false
	if h.defaultFile != "" {
		if _, err := os.Stat(h.defaultFile); err == nil {
			available = true
		}
	}

	c.JSON(http.StatusOK, StatusResponse{
		DefaultFile:      h.defaultFile,
		DefaultAvailable: available,
		Sessions:         h.sessions.Count(),
		TieBreak:         h.tieBreak.Name(),
		DiscountStep:     h.discountStep,
		HistoryEnabled:   h.history != nil,
	})
}

type historyResponse struct {
	Enabled bool             `json:"enabled"`
	Loads   []store.LoadLog  `json:"loads"`
	Quotes  []store.QuoteLog `json:"quotes"`
}

// GetHistory 最近的加载与报价记录
// GET /api/history?limit=20&sessionId=
func (h *Handler) GetHistory(c *gin.Context) {
	resp := historyResponse{
		Enabled: h.history != nil,
		Loads:   []store.LoadLog{},
		Quotes:  []store.QuoteLog{},
	}
	if h.history == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit 값이 올바르지 않습니다"})
		return
	}

	resp.Loads, err = h.history.ListLoadLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp.Quotes, err = h.history.ListQuoteLogs(c.Query("sessionId"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
