package services

import (
	"context"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/consts"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"
	"github.com/git-abhijeet/credit-risk/internal/pkg/utils"
)

type IngestionService struct {
	applicationRepo ApplicationInserter
	scorer          Scorer
}

func NewIngestionService(applicationRepo ApplicationInserter, scorer Scorer) *IngestionService {
	return &IngestionService{
		applicationRepo: applicationRepo,
		scorer:          scorer,
	}
}

// Submit validates a raw submission, asks the model service for a decision
// (best effort) and persists the record. Validation short-circuits on the
// first failure; scoring unavailability never fails the submission.
func (s *IngestionService) Submit(ctx context.Context, req models.ApplicationRequest) (string, error) {
	if req.FullName == "" || req.Email == "" {
		return "", consts.ErrorMissingRequiredFields
	}

	pan := utils.NormalizePAN(req.PAN)
	if !utils.IsValidPAN(pan) {
		return "", consts.ErrorPANFormatValidationFailed
	}

	aadhaar := utils.NormalizeAadhaar(req.Aadhaar)
	if !utils.IsValidAadhaar(aadhaar) {
		return "", consts.ErrorAadhaarFormatValidationFailed
	}

	// The scoring call and the write run on a context detached from the
	// client request so a mid-flight disconnect lets them finish.
	opCtx := context.WithoutCancel(ctx)

	outcome := s.scorer.Score(opCtx, req)
	if !outcome.Scored {
		logger.Info(ctx, "ingestion : proceeding without decision: %s", outcome.UnscoredReason)
	}

	application := models.Application{
		FullName:       req.FullName,
		Email:          req.Email,
		Mobile:         req.Mobile,
		PAN:            pan,
		Aadhaar:        aadhaar,
		MonthlyIncome:  req.MonthlyIncome,
		LoanAmount:     req.LoanAmount,
		EmploymentType: req.EmploymentType,
		LoanPurpose:    req.LoanPurpose,
		ExistingLoans:  req.ExistingLoans,
		CreatedAt:      time.Now().UTC(),
	}

	if outcome.Scored {
		application.Decision = outcome.Decision
		latency := outcome.LatencyMs
		application.ScoreLatencyMs = &latency
	}

	return s.applicationRepo.InsertApplication(opCtx, application)
}
