package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hipphone/internal/model"
	"hipphone/internal/service/catalog"
	"hipphone/internal/service/session"
	"hipphone/internal/store"
)

// catalogSummary 已加载文件概要
type catalogSummary struct {
	Source   string `json:"source"`
	RowCount int    `json:"rowCount"`
}

// SessionResponse 会话状态响应
type SessionResponse struct {
	SessionID     string                   `json:"sessionId"`
	Catalog       *catalogSummary          `json:"catalog"`
	Selection     model.Selection          `json:"selection"`
	NextField     model.Field              `json:"nextField,omitempty"`
	Options       map[model.Field][]string `json:"options"`
	StoreDiscount int64                    `json:"storeDiscount"`
	DiscountStep  int64                    `json:"discountStep"`
	Notice        string                   `json:"notice,omitempty"`
	CatalogError  gin.H                    `json:"catalogError,omitempty"`
}

func (h *Handler) sessionResponse(sess session.Session) SessionResponse {
	resp := SessionResponse{
		SessionID:     sess.ID,
		Selection:     sess.Selection,
		Options:       make(map[model.Field][]string, len(model.SelectionFields)),
		StoreDiscount: sess.StoreDiscount,
		DiscountStep:  h.discountStep,
	}
	if sess.Catalog != nil {
		resp.Catalog = &catalogSummary{
			Source:   sess.Catalog.Source(),
			RowCount: sess.Catalog.Len(),
		}
	}
	for _, f := range model.SelectionFields {
		resp.Options[f] = sess.Catalog.Choices(f, sess.Selection)
	}
	if next, ok := sess.Selection.NextField(); ok {
		resp.NextField = next
	}
	return resp
}

// CreateSession 新建会话，并尝试绑定默认文件
// POST /api/sessions
func (h *Handler) CreateSession(c *gin.Context) {
	cat, reloaded, err := h.loadDefaultCatalog()
	sess := h.sessions.Create(cat)

	if reloaded {
		h.recordLoad(sess.ID, h.defaultFile, store.OriginDefault, cat, err)
	}

	resp := h.sessionResponse(sess)
	if err != nil {
		if errors.Is(err, catalog.ErrNoSource) {
			resp.Notice = msgNoFile
		} else {
			_, body := errorBody(err)
			resp.CatalogError = body
			log.Printf("默认文件加载失败 %s: %v", h.defaultFile, err)
		}
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSession 获取会话状态
// GET /api/sessions/:id
func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(sess))
}

// DeleteSession 删除会话
// DELETE /api/sessions/:id
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// session 读取路径中的会话，失败时已写入响应
func (h *Handler) session(c *gin.Context) (session.Session, bool) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return session.Session{}, false
	}
	return sess, true
}

// sessionWithCatalog 要求会话已加载文件
func (h *Handler) sessionWithCatalog(c *gin.Context) (session.Session, bool) {
	sess, ok := h.session(c)
	if !ok {
		return sess, false
	}
	if sess.Catalog == nil {
		abortWithError(c, catalog.ErrNoSource)
		return sess, false
	}
	return sess, true
}

// recordLoad 写入加载历史；历史库不可用时只打日志
func (h *Handler) recordLoad(sessionID, filename, origin string, cat *catalog.Catalog, loadErr error) {
	if h.history == nil {
		return
	}

	entry := store.LoadLog{
		LoadID:    uuid.New().String(),
		SessionID: sessionID,
		Filename:  filename,
		Origin:    origin,
		Status:    store.LoadStatusOK,
	}

	var (
		schemaErr *catalog.SchemaError
		loadError *catalog.LoadError
	)
	switch {
	case loadErr == nil:
		entry.RowCount = cat.Len()
	case errors.As(loadErr, &schemaErr):
		entry.Status = store.LoadStatusSchemaError
		entry.ErrorMessage = loadErr.Error()
	case errors.As(loadErr, &loadError):
		entry.Status = store.LoadStatusLoadError
		entry.ErrorMessage = loadErr.Error()
	default:
		entry.Status = store.LoadStatusNoSourceFile
		entry.ErrorMessage = loadErr.Error()
	}

	if _, err := h.history.CreateLoadLog(entry); err != nil {
		log.Printf("写入加载历史失败: %v", err)
	}
}
