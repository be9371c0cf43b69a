package services

import (
	"context"

	"github.com/git-abhijeet/credit-risk/internal/pkg/consts"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"
)

type ListingService struct {
	applicationRepo ApplicationLister
	defaultLimit    int
	maxLimit        int
}

func NewListingService(applicationRepo ApplicationLister, defaultLimit, maxLimit int) *ListingService {
	return &ListingService{
		applicationRepo: applicationRepo,
		defaultLimit:    defaultLimit,
		maxLimit:        maxLimit,
	}
}

// RecentApplications serves the admin listing, newest first. limit values
// outside (0, maxLimit] are clamped.
func (s *ListingService) RecentApplications(ctx context.Context, limit int) ([]models.ApplicationSummary, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	items, err := s.applicationRepo.ListRecent(ctx, int64(limit))
	if err != nil {
		logger.Error(ctx, "listing : fetching applications failed: %v", err)
		return nil, consts.ErrorApplicationListingFailed
	}

	if items == nil {
		items = []models.ApplicationSummary{}
	}
	return items, nil
}
