package db

import (
	"context"
	"time"

	"github.com/git-abhijeet/credit-risk/configs"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB wraps the driver client and the selected database. It is built
// once at startup and injected into repositories; the driver's pool handles
// concurrent requests, so nothing reconnects per call.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(ctx context.Context) (*MongoDB, error) {

	uri := configs.DB_URI
	dbName := configs.DB_NAME

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(configs.DB_MAXPOOLSIZE).
		SetMinPoolSize(configs.DB_MINPOOLSIZE).
		SetMaxConnIdleTime(time.Duration(configs.DB_MAXIDLETIME_INMINUTES) * time.Minute)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Error(ctx, "Error in connecting to MongoDB: %v", err)
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (mdb *MongoDB) Close(ctx context.Context) error {
	return mdb.Client.Disconnect(ctx)
}
