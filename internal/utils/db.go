package utils

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"parks-api/internal/logger"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
)

// BuildPostgresDSNFromEnv：由 PG_* 环境变量拼接连接串
func BuildPostgresDSNFromEnv() string {
	host := EnvString("PG_HOST", "localhost")
	port := EnvString("PG_PORT", "5432")
	user := EnvString("PG_USER", "postgres")
	pass := EnvString("PG_PASSWORD", "")
	db := EnvString("PG_DB", "parks")
	ssl := EnvString("PG_SSLMODE", "disable")
	dsn := "postgres://" + user
	if pass != "" {
		dsn += ":" + pass
	}
	dsn += "@" + host + ":" + port + "/" + db + "?sslmode=" + ssl
	return dsn
}

// OpenPostgresFromEnv：打开连接池并按 PG_MAX_OPEN_CONNS/PG_MAX_IDLE_CONNS 设置上限
// 约束：sql.Open 不建立连接，可用性由 WaitReady 确认
func OpenPostgresFromEnv() (*sql.DB, error) {
	db, err := sql.Open("postgres", BuildPostgresDSNFromEnv())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(EnvInt("PG_MAX_OPEN_CONNS", 10))
	db.SetMaxIdleConns(EnvInt("PG_MAX_IDLE_CONNS", 5))
	return db, nil
}

// Pinger：数据库与 Redis 客户端的共同能力
type Pinger func(ctx context.Context) error

// WaitReady：以固定间隔重试 ping，直到成功、达到次数上限或 ctx 结束
// 背景：容器编排下依赖服务可能晚于本进程就绪
func WaitReady(ctx context.Context, name string, ping Pinger, interval time.Duration, attempts uint64) error {
	n := 0
	op := func() error {
		n++
		err := ping(ctx)
		if err != nil {
			logger.L().Warn("dependency_not_ready", "name", name, "attempt", n, "err", err)
		}
		return err
	}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), attempts), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return fmt.Errorf("%s not ready after %d attempts: %w", name, n, err)
	}
	logger.L().Debug("dependency_ready", "name", name, "attempts", n)
	return nil
}
