// 程序入口：一次性拉取公园数据并写入配置的存储，供 cron 或部署流程调用
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"parks-api/internal/app"
	"parks-api/internal/logger"
	"parks-api/internal/override"
	"parks-api/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	clearOnly := flag.Bool("clear", false, "only delete the cached dataset")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
	l := logger.Setup()

	if err := run(*timeout, *clearOnly, l); err != nil {
		os.Exit(1)
	}
}

// run：返回前关闭存储；错误已记录日志
func run(timeout time.Duration, clearOnly bool, l *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	kv, closer, err := storage.OpenFromEnv(ctx)
	if err != nil {
		l.Error("storage_open_error", "err", err)
		return err
	}
	defer closer.Close()

	svc, err := app.NewDataService(kv, override.Default())
	if err != nil {
		l.Error("service_init_error", "err", err)
		return err
	}
	if clearOnly {
		if err := svc.ClearCache(ctx); err != nil {
			l.Error("clear_error", "err", err)
			return err
		}
		return nil
	}
	start := time.Now()
	parks, err := svc.Refresh(ctx)
	if err != nil {
		l.Error("refresh_error", "err", err)
		return err
	}
	l.Info("refresh_done", "parks", len(parks), "duration_ms", time.Since(start).Milliseconds())
	return nil
}
