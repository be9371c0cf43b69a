package services

import (
	"context"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/downstreams"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"
)

type ApplicationInserter interface {
	InsertApplication(ctx context.Context, application models.Application) (string, error)
}

type ApplicationLister interface {
	ListRecent(ctx context.Context, limit int64) ([]models.ApplicationSummary, error)
}

type MetricsReader interface {
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountScoredSince(ctx context.Context, since time.Time) (int64, error)
	RiskBandCountsSince(ctx context.Context, since time.Time) ([]models.RiskBandCount, error)
	ScoreLatenciesSince(ctx context.Context, since time.Time) ([]int64, error)
}

type Scorer interface {
	Score(ctx context.Context, payload models.ApplicationRequest) downstreams.ScoreOutcome
}

type UserStore interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user models.User) (string, error)
}

type SnapshotCache interface {
	Get(ctx context.Context) (*models.MetricsSnapshot, bool)
	Set(ctx context.Context, snapshot models.MetricsSnapshot)
}

type IngestionServiceInterface interface {
	Submit(ctx context.Context, req models.ApplicationRequest) (string, error)
}

type MetricsServiceInterface interface {
	Snapshot(ctx context.Context, now time.Time) (*models.MetricsSnapshot, error)
}

type ListingServiceInterface interface {
	RecentApplications(ctx context.Context, limit int) ([]models.ApplicationSummary, error)
}

type AuthServiceInterface interface {
	Signup(ctx context.Context, req models.SignupRequest) (string, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error)
}
