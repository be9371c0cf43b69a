package main

import (
	"context"

	"github.com/git-abhijeet/credit-risk/configs"
	"github.com/git-abhijeet/credit-risk/internal/app/router"
	"github.com/git-abhijeet/credit-risk/internal/pkg/db"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
	"github.com/git-abhijeet/credit-risk/internal/pkg/otel"
	"github.com/git-abhijeet/credit-risk/internal/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// setup otel collector
	_, err = otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}

	// DB Connection: established once here, injected everywhere.
	mdb, dbErr := db.NewMongoDB(ctx)
	if dbErr != nil {
		logger.Error(ctx, "Error connecting to MongoDB: %v", dbErr)
		return
	}
	defer mdb.Close(ctx)

	// Redis is optional; the metrics snapshot cache degrades to recompute
	// when it is absent.
	var redisClient *goredis.Client
	if configs.REDIS_ENABLED {
		rc, err := redis.ConnectToRedis(ctx, configs.GetRedisConfig())
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis, continuing without snapshot cache: %v", err)
		} else {
			redisClient = rc.Client
			defer redis.Disconnect(redisClient)
		}
	}

	r := router.SetupRouter(mdb, redisClient)

	port := configs.SERVER_PORT

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
