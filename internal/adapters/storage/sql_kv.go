package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/maxvelasco/portuguese-map/internal/platform/obs"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

// SQLKV is a Postgres-backed key-value store over the kv_store table.
type SQLKV struct {
	DB *sql.DB
}

func NewSQLKV(db *sql.DB) *SQLKV {
	return &SQLKV{DB: db}
}

var _ ports.KeyValueStore = (*SQLKV)(nil)

func (s *SQLKV) Get(ctx context.Context, key string) (_ string, err error) {
	defer obs.Time(ctx, "kv.sql.Get")(&err)

	if s.DB == nil {
		return "", errors.New("kv store: db is nil")
	}

	var value string
	err = s.DB.QueryRowContext(ctx, `
	SELECT value
    FROM kv_store
    WHERE key = $1;
	`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ports.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get kv key=%q: query kv_store table: %w", key, err)
	}

	return value, nil
}

func (s *SQLKV) Set(ctx context.Context, key, value string) (err error) {
	defer obs.Time(ctx, "kv.sql.Set")(&err)

	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("set kv: empty key")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO kv_store (key, value)
    VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value;
	`, key, value)
	if err != nil {
		return fmt.Errorf("set kv key=%q: %w", key, err)
	}

	return nil
}

func (s *SQLKV) Delete(ctx context.Context, key string) (err error) {
	defer obs.Time(ctx, "kv.sql.Delete")(&err)

	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1;`, key); err != nil {
		return fmt.Errorf("delete kv key=%q: %w", key, err)
	}

	return nil
}
