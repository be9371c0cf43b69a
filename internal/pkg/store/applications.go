package store

import (
	"context"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/consts"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ApplicationRepository struct {
	repo        *MongoRepository[models.Application]
	summaryRepo *MongoRepository[models.ApplicationSummary]
	latencyRepo *MongoRepository[latencyDoc]
}

type latencyDoc struct {
	ScoreLatencyMs int64 `bson:"scoreLatencyMs"`
}

func NewApplicationRepository(database *mongo.Database) *ApplicationRepository {
	collection := database.Collection(consts.ApplicationsCollection)
	return &ApplicationRepository{
		repo:        NewMongoRepository[models.Application](collection),
		summaryRepo: NewMongoRepository[models.ApplicationSummary](collection),
		latencyRepo: NewMongoRepository[latencyDoc](collection),
	}
}

// InsertApplication persists one application record. Records are written
// once and never updated or deleted.
func (r *ApplicationRepository) InsertApplication(ctx context.Context, application models.Application) (string, error) {
	result, err := r.repo.Create(ctx, application)
	if err != nil {
		logger.Error(ctx, "application : Error while inserting %v", err.Error())
		return "", consts.ErrorPersistenceFailed
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", consts.ErrorPersistenceFailed
	}
	return id.Hex(), nil
}

func (r *ApplicationRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.repo.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
}

func (r *ApplicationRepository) CountScoredSince(ctx context.Context, since time.Time) (int64, error) {
	return r.repo.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": since},
		"decision":  bson.M{"$exists": true},
	})
}

// RiskBandCountsSince groups the window's records by decision.band. Records
// without a decision come back with an empty band; the caller folds those
// and any unrecognized values into the unknown bucket.
func (r *ApplicationRepository) RiskBandCountsSince(ctx context.Context, since time.Time) ([]models.RiskBandCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{"_id": "$decision.band", "c": bson.M{"$sum": 1}}}},
	}

	var counts []models.RiskBandCount
	if err := r.repo.AggregateAll(ctx, pipeline, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *ApplicationRepository) ScoreLatenciesSince(ctx context.Context, since time.Time) ([]int64, error) {
	filter := bson.M{
		"createdAt":      bson.M{"$gte": since},
		"scoreLatencyMs": bson.M{"$type": "number"},
	}
	opts := options.Find().SetProjection(bson.M{"scoreLatencyMs": 1})

	docs, err := r.latencyRepo.FindAll(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	latencies := make([]int64, 0, len(docs))
	for _, d := range docs {
		latencies = append(latencies, d.ScoreLatencyMs)
	}
	return latencies, nil
}

// ListRecent returns the newest applications with a projection trimmed to
// what the admin listing renders.
func (r *ApplicationRepository) ListRecent(ctx context.Context, limit int64) ([]models.ApplicationSummary, error) {
	opts := options.Find().
		SetProjection(bson.M{
			"fullName":                 1,
			"email":                    1,
			"monthlyIncome":            1,
			"loanAmount":               1,
			"createdAt":                1,
			"decision.band":            1,
			"decision.predicted_class": 1,
		}).
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)

	return r.summaryRepo.FindAll(ctx, bson.M{}, opts)
}
