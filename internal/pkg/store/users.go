package store

import (
	"context"

	"github.com/git-abhijeet/credit-risk/internal/pkg/consts"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	repo *MongoRepository[models.User]
}

func NewUserRepository(database *mongo.Database) *UserRepository {
	collection := database.Collection(consts.UsersCollection)
	return &UserRepository{repo: NewMongoRepository[models.User](collection)}
}

// UserByEmail returns nil without an error when no user exists.
func (r *UserRepository) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.repo.Read(ctx, bson.M{"email": email})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.Error(ctx, "users : Error while reading %v", err.Error())
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) InsertUser(ctx context.Context, user models.User) (string, error) {
	result, err := r.repo.Create(ctx, user)
	if err != nil {
		logger.Error(ctx, "users : Error while inserting %v", err.Error())
		return "", consts.ErrorPersistenceFailed
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", consts.ErrorPersistenceFailed
	}
	return id.Hex(), nil
}
