package v1

import (
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"hipphone/internal/service/catalog"
	"hipphone/internal/service/session"
	"hipphone/internal/store"
)

// Options 处理器选项
type Options struct {
	DefaultFile  string
	TieBreak     catalog.TieBreaker
	DiscountStep int64
}

// Handler V1 API 处理器
type Handler struct {
	sessions     *session.MemoryStore
	history      *store.Store // 可为 nil（未开启历史）
	defaultFile  string
	tieBreak     catalog.TieBreaker
	discountStep int64

	defaultMu      sync.Mutex
	defaultCatalog *catalog.Catalog
	defaultModTime time.Time
}

// NewHandler 创建 V1 API 处理器
func NewHandler(sessions *session.MemoryStore, history *store.Store, opts Options) *Handler {
	if opts.TieBreak == nil {
		opts.TieBreak = catalog.MaxSubsidy
	}
	if opts.DiscountStep <= 0 {
		opts.DiscountStep = 1000
	}
	return &Handler{
		sessions:     sessions,
		history:      history,
		defaultFile:  opts.DefaultFile,
		tieBreak:     opts.TieBreak,
		discountStep: opts.DiscountStep,
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 历史记录
	router.GET("/history", h.GetHistory)
	router.GET("/history/export", h.ExportHistory)

	// 会话
	router.POST("/sessions", h.CreateSession)
	router.GET("/sessions/:id", h.GetSession)
	router.DELETE("/sessions/:id", h.DeleteSession)

	// 数据文件
	router.POST("/sessions/:id/catalog", h.UploadCatalog)

	// 级联选择与门店折扣
	router.PATCH("/sessions/:id/selection", h.UpdateSelection)
	router.DELETE("/sessions/:id/selection", h.ResetSelection)
	router.PATCH("/sessions/:id/discount", h.UpdateDiscount)

	// 计算结果与诊断
	router.GET("/sessions/:id/quote", h.GetQuote)
	router.GET("/sessions/:id/diagnostics", h.GetDiagnostics)
}

// loadDefaultCatalog 读取默认文件；文件未变化时复用上次结果
// reloaded=true 表示本次真正读取了文件
func (h *Handler) loadDefaultCatalog() (cat *catalog.Catalog, reloaded bool, err error) {
	h.defaultMu.Lock()
	defer h.defaultMu.Unlock()

	info, statErr := os.Stat(h.defaultFile)
	if h.defaultFile != "" && statErr == nil && h.defaultCatalog != nil && info.ModTime().Equal(h.defaultModTime) {
		return h.defaultCatalog, false, nil
	}

	cat, err = catalog.Open(nil, h.defaultFile)
	if err != nil {
		h.defaultCatalog = nil
		// 未配置默认文件时没有真正读取
		return nil, h.defaultFile != "", err
	}
	h.defaultCatalog = cat
	if statErr == nil {
		h.defaultModTime = info.ModTime()
	}
	return cat, true, nil
}
