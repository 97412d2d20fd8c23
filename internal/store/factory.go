package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"healthdesk/database"
	"healthdesk/internal/cache"
	"healthdesk/internal/config"
)

// New opens the backend selected by PATIENT_STORE. The returned close func
// releases any connection the backend holds.
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (DocumentStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.PatientStore {
	case config.StorePostgres:
		db, err := database.ConnectDatabase(cfg, log)
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, fmt.Errorf("failed to get database connection: %w", err)
		}
		return NewGormStore(db), sqlDB.Close, nil

	case config.StoreRedis:
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		log.WithField("key", cfg.RedisDocumentKey).Info("Using redis patient store")
		return NewRedisStore(client, cfg.RedisDocumentKey), client.Close, nil

	case config.StoreJSON, "":
		log.WithField("file", cfg.PatientsFile).Info("Using JSON file patient store")
		return NewFileStore(cfg.PatientsFile), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown patient store %q", cfg.PatientStore)
}
