package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hipphone/internal/config"
	"hipphone/internal/server"
	"hipphone/internal/store"
)

var (
	port        = flag.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode     = flag.Bool("dev", false, "开发模式")
	dataDir     = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	defaultFile = flag.String("file", "", "默认补贴文件 CSV/XLSX (覆盖配置文件)")
)

func main() {
	flag.Parse()

	// 非生产环境读取 .env，文件不存在时忽略
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("读取 .env 失败: %v", err)
		}
	}

	fmt.Println("==========================================")
	fmt.Println("  HipPhone - 휴대폰 공시지원금 계산기")
	fmt.Println("==========================================")

	// 加载配置
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *defaultFile != "" {
		cfg.Data.DefaultFile = *defaultFile
	}

	// 确保数据目录存在
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("创建数据目录失败: %v", err)
		dir = cfg.Data.DataDir
	} else {
		fmt.Printf("数据目录: %s\n", dir)
	}
	fmt.Printf("默认文件: %s\n", config.ResolveDefaultFile(cfg))

	// 历史记录（SQLite）
	var history *store.Store
	if cfg.Data.History {
		history, err = store.New(filepath.Join(dir, "hipphone.db"))
		if err != nil {
			log.Fatalf("初始化数据库失败: %v", err)
		}
		defer history.Close()

		if cfg.Data.HistoryDays > 0 {
			before := time.Now().AddDate(0, 0, -cfg.Data.HistoryDays)
			if n, err := history.Prune(before); err != nil {
				log.Printf("清理历史记录失败: %v", err)
			} else if n > 0 {
				log.Printf("已清理 %d 条过期历史记录", n)
			}
		}
	}

	srv, err := server.NewServer(cfg, history)
	if err != nil {
		log.Fatalf("创建服务失败: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.ExpireSessions(ctx, time.Minute)

	// 启动服务器
	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()
	fmt.Printf("请访问 http://localhost:%d/api/status\n", cfg.Server.Port)
	fmt.Println("\n按 Ctrl+C 停止服务...")

	// 等待信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("关闭服务失败: %v", err)
	}
}
