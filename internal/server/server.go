package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "hipphone/internal/api/v1"
	"hipphone/internal/config"
	"hipphone/internal/service/catalog"
	"hipphone/internal/service/session"
	"hipphone/internal/store"
)

// Server HTTP服务器
type Server struct {
	router   *gin.Engine
	http     *http.Server
	sessions *session.MemoryStore
	history  *store.Store
	ttl      time.Duration
}

// NewServer 创建服务器；history 为 nil 时不记录历史
func NewServer(cfg *config.AppConfig, history *store.Store) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	tieBreak, err := catalog.TieBreakerByName(cfg.Pricing.TieBreak)
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:   gin.Default(),
		sessions: session.NewMemoryStore(),
		history:  history,
		ttl:      time.Duration(cfg.Session.TTLMinutes) * time.Minute,
	}

	handler := v1.NewHandler(s.sessions, history, v1.Options{
		DefaultFile:  config.ResolveDefaultFile(cfg),
		TieBreak:     tieBreak,
		DiscountStep: cfg.Pricing.DiscountStep,
	})
	s.setupRoutes(cfg, handler)

	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: s.router,
	}
	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(cfg *config.AppConfig, handler *v1.Handler) {
	corsCfg := cors.Config{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.Server.DevMode || len(cfg.Server.AllowedOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	}
	s.router.Use(cors.New(corsCfg))

	api := s.router.Group("/api")
	{
		handler.RegisterRoutes(api)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found: " + c.Request.URL.Path})
	})
}

// Handler 返回 http.Handler（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器，阻塞直到 Shutdown
func (s *Server) Run() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ExpireSessions 定期清理超时会话，ctx 取消时退出
func (s *Server) ExpireSessions(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Expire(s.ttl); n > 0 {
				log.Printf("清理过期会话 %d 个", n)
			}
		}
	}
}

// Shutdown 优雅关闭
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
