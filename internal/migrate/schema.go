package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"parks-api/internal/logger"
)

// KVTable：键值存储表名
const KVTable = "parks_kv"

// 背景：首次运行自动建表，保障缓存与偏好读写
// 约束：使用 IF NOT EXISTS，可重复执行
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ` + KVTable + ` (
            kv_key TEXT PRIMARY KEY,
            kv_value TEXT NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_parks_kv_updated ON ` + KVTable + `(updated_at)`,
	}
	for i, s := range stmts {
		logger.L().Debug("schema_exec", "idx", i)
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	logger.L().Debug("schema_done")
	return nil
}
