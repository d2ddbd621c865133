// 程序入口：生成 sitemap.xml；数据来自配置的存储缓存，必要时拉取
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
	"parks-api/internal/sitemap"
	"parks-api/internal/storage"
	"parks-api/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))

	out := flag.String("out", filepath.Join("public", "sitemap.xml"), "output file")
	baseURL := flag.String("base-url", utils.EnvString("SITE_BASE_URL", sitemap.DefaultBaseURL), "site base URL")
	flag.Parse()
	l := logger.Setup()

	if err := run(*out, *baseURL, l); err != nil {
		os.Exit(1)
	}
}

// run：返回前关闭存储；错误已记录日志
func run(out, baseURL string, l *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
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
	parks, err := svc.GetParks(ctx)
	if err != nil {
		l.Error("parks_load_error", "err", err)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		l.Error("sitemap_dir_error", "err", err)
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		l.Error("sitemap_create_error", "err", err)
		return err
	}
	set := sitemap.Build(baseURL, parks, time.Now())
	if err := sitemap.Write(f, set); err != nil {
		f.Close()
		l.Error("sitemap_write_error", "err", err)
		return err
	}
	if err := f.Close(); err != nil {
		l.Error("sitemap_close_error", "err", err)
		return err
	}
	l.Info("sitemap_done", "path", out, "urls", len(set.URLs), "parks", len(parks))
	return nil
}
