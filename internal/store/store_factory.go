package store

import (
	"context"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"socialstream/internal/config"
	"socialstream/internal/repository"
	"socialstream/internal/store/memory"
	"socialstream/internal/store/mongo"
)

func NewStore(cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	if cfg.MongoURI == "" {
		return memory.New(logger), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("mongo connect failed", zap.Error(err))
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Error("mongo ping failed", zap.Error(err))
		return nil, err
	}
	return mongo.New(client.Database(cfg.MongoDB), logger), nil
}
