package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/inquiry-desk/internal/repository"
	"github.com/noah-isme/inquiry-desk/internal/service"
	"github.com/noah-isme/inquiry-desk/pkg/config"
	"github.com/noah-isme/inquiry-desk/pkg/database"
	"github.com/noah-isme/inquiry-desk/pkg/storage"
)

// openInquiryStore picks the inquiry store once at startup. When the remote store is
// enabled but unreachable the local store is used instead.
func openInquiryStore(ctx context.Context, cfg *config.Config, logr *zap.Logger) (service.InquiryStore, func(), error) {
	if cfg.RemoteStore.Enabled {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err == nil && cfg.RemoteStore.AutoMigrate {
			if err = database.Migrate(ctx, db, database.Up); err != nil {
				_ = db.Close()
			}
		}
		if err == nil {
			logr.Info("using remote inquiry store", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Name))
			return repository.NewInquiryRepository(db), func() { _ = db.Close() }, nil
		}
		logr.Warn("remote inquiry store unavailable, falling back to local store", zap.Error(err))
	}

	blobs, err := storage.NewBlobStore(ctx, cfg.LocalStore, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	logr.Info("using local inquiry store", zap.String("driver", cfg.LocalStore.Driver), zap.String("key", cfg.LocalStore.Key))
	return repository.NewLocalInquiryRepository(blobs, cfg.LocalStore.Key), func() { _ = blobs.Close() }, nil
}
