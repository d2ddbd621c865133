package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"parks-api/internal/logger"
	"parks-api/internal/migrate"
	"parks-api/internal/utils"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenFromEnv：按 STORAGE_BACKEND 选择实现（memory|file|redis|postgres），默认 memory
// 约束：redis/postgres 需等待依赖就绪；postgres 在返回前完成建表
func OpenFromEnv(ctx context.Context) (KV, io.Closer, error) {
	backend := utils.EnvString("STORAGE_BACKEND", "memory")
	wait := utils.EnvDuration("STORAGE_READY_INTERVAL", time.Second)
	attempts := uint64(utils.EnvInt("STORAGE_READY_ATTEMPTS", 10))
	logger.L().Info("storage_open", "backend", backend)
	switch backend {
	case "memory":
		return NewMemory(), nopCloser{}, nil
	case "file":
		s, err := NewFile(utils.EnvString("STORAGE_DIR", "./data/kv"))
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	case "redis":
		rc := utils.OpenRedisFromEnv()
		ping := func(ctx context.Context) error { return rc.Ping(ctx).Err() }
		if err := utils.WaitReady(ctx, "redis", ping, wait, attempts); err != nil {
			rc.Close()
			return nil, nil, err
		}
		return NewRedis(rc, utils.EnvString("REDIS_PREFIX", "")), rc, nil
	case "postgres":
		db, err := utils.OpenPostgresFromEnv()
		if err != nil {
			return nil, nil, err
		}
		if err := utils.WaitReady(ctx, "postgres", db.PingContext, wait, attempts); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := migrate.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return NewPostgres(db), db, nil
	}
	return nil, nil, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
}
