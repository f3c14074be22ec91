package v1

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hipphone/internal/model"
	"hipphone/internal/service/calculator"
	"hipphone/internal/store"
)

// QuoteResponse 计算结果
type QuoteResponse struct {
	Selection model.Selection  `json:"selection"`
	Record    model.Record     `json:"record"`
	Quote     model.PriceQuote `json:"quote"`
	Memo      string           `json:"memo"`
	Warnings  []string         `json:"warnings"`
	TieBreak  string           `json:"tieBreak"`
}

// GetQuote 解析完整选择并计算最终价格
// GET /api/sessions/:id/quote
func (h *Handler) GetQuote(c *gin.Context) {
	sess, ok := h.sessionWithCatalog(c)
	if !ok {
		return
	}

	record, err := sess.Catalog.Resolve(sess.Selection, h.tieBreak)
	if err != nil {
		abortWithError(c, err)
		return
	}

	quote := calculator.ComputePrice(record, sess.StoreDiscount)

	// 同一报价重复刷新只记一次历史
	key := fmt.Sprintf("%s|%d|%+v|%+v", sess.Catalog.Source(), record.Row, sess.Selection, quote)
	if changed, err := h.sessions.MarkQuoted(sess.ID, key); err == nil && changed {
		h.recordQuote(sess.ID, record, quote)
	}

	c.JSON(http.StatusOK, QuoteResponse{
		Selection: sess.Selection,
		Record:    record,
		Quote:     quote,
		Memo:      calculator.Memo(record, quote),
		Warnings:  calculator.ValidateRecord(record),
		TieBreak:  h.tieBreak.Name(),
	})
}

func (h *Handler) recordQuote(sessionID string, r model.Record, q model.PriceQuote) {
	if h.history == nil {
		return
	}
	_, err := h.history.CreateQuoteLog(store.QuoteLog{
		SessionID:     sessionID,
		Carrier:       r.Carrier,
		Model:         r.Model,
		Plan:          r.PlanCanonical,
		ContractType:  r.ContractType,
		ListPrice:     q.ListPrice,
		Subsidy:       q.Subsidy,
		StoreDiscount: q.StoreDiscount,
		FinalPrice:    q.FinalPrice,
	})
	if err != nil {
		log.Printf("写入报价历史失败: %v", err)
	}
}
