package v1

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hipphone/internal/service/catalog"
	"hipphone/internal/store"
)

// UploadCatalog 上传 CSV/XLSX，替换会话文件并清空选择
// POST /api/sessions/:id/catalog
func (h *Handler) UploadCatalog(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드 파일이 없습니다"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		abortWithError(c, &catalog.LoadError{Source: fh.Filename, Err: err})
		return
	}
	defer f.Close()

	cat, err := catalog.Open(&catalog.Source{Name: fh.Filename, Reader: f}, h.defaultFile)
	h.recordLoad(sess.ID, fh.Filename, store.OriginUpload, cat, err)
	if err != nil {
		log.Printf("上传文件加载失败 %s: %v", fh.Filename, err)
		abortWithError(c, err)
		return
	}

	sess, err = h.sessions.SetCatalog(sess.ID, cat)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(sess))
}

// GetDiagnostics 诊断面板：表结构、去重计数、当前选择匹配的行
// GET /api/sessions/:id/diagnostics
func (h *Handler) GetDiagnostics(c *gin.Context) {
	sess, ok := h.sessionWithCatalog(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Catalog.Diagnose(sess.Selection))
}
