package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"pantry/internal/config"
	"pantry/internal/repository"
	"pantry/internal/store/firestore"
	"pantry/internal/store/memory"
	"pantry/internal/store/mysql"
	"pantry/internal/store/postgres"
	"pantry/internal/store/redis"
	"pantry/internal/store/sqlite"
)

const connectTimeout = 10 * time.Second

// NewStore opens the backend named by cfg.StoreDriver. The returned cleanup
// releases its connections.
func NewStore(cfg *config.Config, logger *zap.Logger) (repository.InventoryRepository, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	noop := func() {}
	log := logger.With(zap.String("driver", cfg.StoreDriver))

	switch cfg.StoreDriver {
	case config.DriverMemory:
		return memory.New(logger), noop, nil

	case config.DriverMySQL:
		s, err := mysql.Open(ctx, cfg.MySQLDSN, logger)
		if err != nil {
			log.Error("mysql open failed", zap.Error(err))
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case config.DriverPostgres:
		s, err := postgres.Open(ctx, cfg.PostgresDSN, logger)
		if err != nil {
			log.Error("postgres open failed", zap.Error(err))
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.SQLitePath, logger)
		if err != nil {
			log.Error("sqlite open failed", zap.String("path", cfg.SQLitePath), zap.Error(err))
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case config.DriverRedis:
		client, err := redis.Dial(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Error("redis dial failed", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			return nil, nil, err
		}
		return redis.New(client, cfg.Collection, logger), func() { _ = client.Close() }, nil

	case config.DriverFirestore:
		client, err := firestore.Dial(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
		if err != nil {
			log.Error("firestore dial failed", zap.String("project", cfg.FirestoreProjectID), zap.Error(err))
			return nil, nil, err
		}
		s := firestore.New(client, cfg.Collection, logger)
		return s, func() { _ = s.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
