package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/maxvelasco/portuguese-map/internal/ports"
)

// SQLite backed key-value store over the kv_store table.
type SqliteKV struct {
	DB *sql.DB
}

func NewSqliteKV(db *sql.DB) *SqliteKV {
	return &SqliteKV{DB: db}
}

var _ ports.KeyValueStore = (*SqliteKV)(nil)

func (s *SqliteKV) Get(ctx context.Context, key string) (string, error) {
	if s.DB == nil {
		return "", errors.New("kv store: db is nil")
	}

	var value string
	err := s.DB.QueryRowContext(ctx, `
	SELECT value
    FROM kv_store
    WHERE key = ?;
	`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ports.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get kv key=%q: query kv_store table: %w", key, err)
	}

	return value, nil
}

func (s *SqliteKV) Set(ctx context.Context, key, value string) error {
	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("set kv: empty key")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO kv_store (
        key,
        value
    )
    VALUES (?, ?);
	`, key, value)
	if err != nil {
		return fmt.Errorf("set kv key=%q: %w", key, err)
	}

	return nil
}

func (s *SqliteKV) Delete(ctx context.Context, key string) error {
	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?;`, key); err != nil {
		return fmt.Errorf("delete kv key=%q: %w", key, err)
	}

	return nil
}
