package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/noah-isme/inquiry-desk/pkg/cache"
	"github.com/noah-isme/inquiry-desk/pkg/config"
	"github.com/noah-isme/inquiry-desk/pkg/database"
)

// BlobStore keeps whole string values under string keys.
type BlobStore interface {
	// Get returns the value and true, or false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// NewBlobStore opens the store selected by cfg.Driver.
func NewBlobStore(ctx context.Context, cfg config.LocalStoreConfig, redisCfg config.RedisConfig) (BlobStore, error) {
	switch cfg.Driver {
	case "", config.LocalDriverFile:
		return NewFileBlobStore(cfg.Path)
	case config.LocalDriverSQLite:
		db, err := database.NewSQLite(filepath.Join(cfg.Path, "inquiries.db"))
		if err != nil {
			return nil, err
		}
		return NewSQLiteBlobStore(ctx, db)
	case config.LocalDriverRedis:
		client, err := cache.NewRedis(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		return NewRedisBlobStore(client), nil
	default:
		return nil, fmt.Errorf("unknown local store driver %q", cfg.Driver)
	}
}
