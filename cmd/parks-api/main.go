// 程序入口：仅负责读取配置、初始化依赖并启动服务；API 注册在 internal/api 以便扩展
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	_ "time/tzdata"

	"parks-api/internal/api"
	"parks-api/internal/app"
	"parks-api/internal/locate"
	"parks-api/internal/logger"
	"parks-api/internal/metrics"
	"parks-api/internal/middleware"
	"parks-api/internal/override"
	"parks-api/internal/prefs"
	"parks-api/internal/refresh"
	"parks-api/internal/storage"
	"parks-api/internal/utils"
	"parks-api/internal/version"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
	l := logger.Setup()
	l.Debug("log_init_ok", "commit", version.Commit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, l)
	stop()
	if err != nil {
		os.Exit(1)
	}
	l.Info("shutdown_done")
}

// run：装配并运行服务；返回前关闭已打开的存储与定位库，错误已记录日志
func run(ctx context.Context, l *slog.Logger) error {
	apiBase := utils.EnvString("API_BASE", "/api")
	l.Debug("config_api_base", "base", apiBase)

	kv, closer, err := storage.OpenFromEnv(ctx)
	if err != nil {
		l.Error("storage_open_error", "err", err)
		return err
	}
	defer closer.Close()

	overrides := override.Default()
	svc, err := app.NewDataService(kv, overrides)
	if err != nil {
		l.Error("service_init_error", "err", err)
		return err
	}

	locator, err := locate.OpenFromEnv()
	if err != nil {
		// 背景：定位仅服务于最近排序，数据库缺失不阻断启动
		l.Warn("geoip_disabled", "err", err)
		locator = nil
	}
	defer locator.Close()

	apiMux := api.BuildRoutes(api.Deps{
		Parks:       svc,
		Overrides:   overrides,
		Prefs:       prefs.New(kv),
		Locator:     locator,
		AdminToken:  os.Getenv("ADMIN_TOKEN"),
		SiteBaseURL: utils.EnvString("SITE_BASE_URL", ""),
	})
	mux := http.NewServeMux()
	mux.Handle(apiBase+"/", http.StripPrefix(apiBase, apiMux))
	mux.Handle(apiBase+"/metrics", metrics.Handler())
	mux.HandleFunc(apiBase+"/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("cache-control", "no-store")
		w.WriteHeader(http.StatusNoContent)
	})
	// NOTE: 向前端暴露 API 基础路径，避免硬编码
	mux.HandleFunc("/config.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/javascript; charset=utf-8")
		w.Header().Set("cache-control", "no-store")
		_, _ = w.Write([]byte("window.__API_BASE__='" + apiBase + "'\n"))
		_, _ = w.Write([]byte("window.__COMMIT_SHA__='" + version.Commit + "'\n"))
	})

	handler := logger.AccessMiddleware(l)(mux)
	handler = middleware.Wrap(handler)
	addr := utils.EnvString("ADDR", ":8080")
	s := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Info("listening", "addr", addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		l.Info("shutdown_begin")
		return s.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		// 预热：启动即加载一次，首个请求不必等待远程数据集
		parks, err := svc.GetParks(gctx)
		if err != nil {
			l.Warn("warmup_error", "err", err)
			return nil
		}
		l.Info("warmup_done", "parks", len(parks))
		return nil
	})
	if utils.EnvBool("REFRESH_ENABLED", true) {
		sched := refresh.NewFromEnv(svc)
		g.Go(func() error {
			if err := sched.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.Error("server_error", "err", err)
		return err
	}
	return nil
}
