package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parks-api/internal/migrate"

	sq "github.com/Masterminds/squirrel"
)

// Postgres：基于单表 parks_kv 的存储，表结构由 migrate.EnsureSchema 创建
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (s *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	q, args, err := builder().
		Select("kv_value").
		From(migrate.KVTable).
		Where(sq.Eq{"kv_key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build select: %w", err)
	}
	var v string
	err = s.db.QueryRowContext(ctx, q, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return v, true, nil
}

func (s *Postgres) Set(ctx context.Context, key, value string) error {
	q, args, err := builder().
		Insert(migrate.KVTable).
		Columns("kv_key", "kv_value", "updated_at").
		Values(key, value, sq.Expr("now()")).
		Suffix("ON CONFLICT (kv_key) DO UPDATE SET kv_value = EXCLUDED.kv_value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	q, args, err := builder().
		Delete(migrate.KVTable).
		Where(sq.Eq{"kv_key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}
