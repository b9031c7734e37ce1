package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/CreativeMB/Server/internal/config"
	"github.com/CreativeMB/Server/internal/db"
	"github.com/CreativeMB/Server/internal/logger"
	"github.com/CreativeMB/Server/internal/redis"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
	Mongo *mongo.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {

	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunDirectoryMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("directory database ready", nil)

	redisClient, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("presence store ready", nil)

	mongoCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := mongoClient.Ping(mongoCtx, nil); err != nil {
		return nil, err
	}

	logger.Info("document store ready", nil)

	return &Infra{
		DB:    &db.DB{DB: sqlDB},
		Redis: redisClient,
		Mongo: mongoClient,
	}, nil
}

func (i *Infra) close() error {

	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := i.Mongo.Disconnect(disconnectCtx); err != nil {
		return err
	}

	if err := i.Redis.Close(); err != nil {
		return err
	}

	return i.DB.Close()
}
