package redis

import (
	"context"

	"github.com/git-abhijeet/credit-risk/configs"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	Client *redis.Client
}

func ConnectToRedis(ctx context.Context, cfg configs.RedisConfig) (*RedisClient, error) {

	logger.Info(ctx, "Connecting to Redis %s db=%d", cfg.Addr, cfg.DB)

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.ConnectTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error(ctx, "Redis ping failed: %v", err)
		return nil, err
	}

	logger.Info(ctx, "Successfully connected to Redis")

	return &RedisClient{Client: client}, nil
}

func Disconnect(client *redis.Client) error {
	return client.Close()
}
