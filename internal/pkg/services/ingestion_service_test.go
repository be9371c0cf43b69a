package services

import (
	"context"
	"testing"

	"github.com/git-abhijeet/credit-risk/internal/pkg/consts"
	"github.com/git-abhijeet/credit-risk/internal/pkg/downstreams"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApplicationInserter struct {
	mock.Mock
}

func (m *MockApplicationInserter) InsertApplication(ctx context.Context, application models.Application) (string, error) {
	args := m.Called(ctx, application)
	return args.String(0), args.Error(1)
}

type StubScorer struct {
	outcome downstreams.ScoreOutcome
	called  bool
}

func (s *StubScorer) Score(ctx context.Context, payload models.ApplicationRequest) downstreams.ScoreOutcome {
	s.called = true
	return s.outcome
}

func validRequest() models.ApplicationRequest {
	return models.ApplicationRequest{
		FullName:      "Asha Verma",
		Email:         "asha@example.com",
		PAN:           "abcde1234f",
		Aadhaar:       " 123456789012 ",
		MonthlyIncome: 52000,
		LoanAmount:    250000,
	}
}

func TestSubmitValidationOrder(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*models.ApplicationRequest)
		expectedErr error
	}{
		{
			name:        "missing full name",
			mutate:      func(r *models.ApplicationRequest) { r.FullName = "" },
			expectedErr: consts.ErrorMissingRequiredFields,
		},
		{
			name:        "missing email",
			mutate:      func(r *models.ApplicationRequest) { r.Email = "" },
			expectedErr: consts.ErrorMissingRequiredFields,
		},
		{
			name:        "invalid PAN",
			mutate:      func(r *models.ApplicationRequest) { r.PAN = "ABCD1234F" },
			expectedErr: consts.ErrorPANFormatValidationFailed,
		},
		{
			name:        "invalid Aadhaar",
			mutate:      func(r *models.ApplicationRequest) { r.Aadhaar = "12345" },
			expectedErr: consts.ErrorAadhaarFormatValidationFailed,
		},
		{
			name: "missing fields wins over bad PAN",
			mutate: func(r *models.ApplicationRequest) {
				r.FullName = ""
				r.PAN = "bad"
			},
			expectedErr: consts.ErrorMissingRequiredFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockApplicationInserter)
			scorer := &StubScorer{}
			service := NewIngestionService(repo, scorer)

			req := validRequest()
			tt.mutate(&req)

			_, err := service.Submit(context.Background(), req)
			assert.ErrorIs(t, err, tt.expectedErr)

			// Validation failures must short-circuit before scoring or
			// persistence is attempted.
			assert.False(t, scorer.called)
			repo.AssertNotCalled(t, "InsertApplication", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitScoredOutcomePersistsDecision(t *testing.T) {
	decision := &models.Decision{
		PredictedClass: "P2",
		Band:           "medium",
		Probabilities:  map[string]float64{"P1": 0.1, "P2": 0.7, "P3": 0.15, "P4": 0.05},
		Explanation:    []string{"NETMONTHLYINCOME (importance 0.412)"},
	}

	repo := new(MockApplicationInserter)
	scorer := &StubScorer{outcome: downstreams.Scored(decision, 137)}
	service := NewIngestionService(repo, scorer)

	var stored models.Application
	repo.On("InsertApplication", mock.Anything, mock.MatchedBy(func(app models.Application) bool {
		stored = app
		return true
	})).Return("65f1a2b3c4d5e6f7a8b9c0d1", nil)

	id, err := service.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "65f1a2b3c4d5e6f7a8b9c0d1", id)

	assert.Equal(t, "ABCDE1234F", stored.PAN)
	assert.Equal(t, "123456789012", stored.Aadhaar)
	assert.Equal(t, decision, stored.Decision)
	require.NotNil(t, stored.ScoreLatencyMs)
	assert.Equal(t, int64(137), *stored.ScoreLatencyMs)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestSubmitUnscoredOutcomeStillPersists(t *testing.T) {
	repo := new(MockApplicationInserter)
	scorer := &StubScorer{outcome: downstreams.Unscored("model service unreachable or timed out")}
	service := NewIngestionService(repo, scorer)

	var stored models.Application
	repo.On("InsertApplication", mock.Anything, mock.MatchedBy(func(app models.Application) bool {
		stored = app
		return true
	})).Return("65f1a2b3c4d5e6f7a8b9c0d2", nil)

	id, err := service.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Decision and latency are present together or absent together.
	assert.Nil(t, stored.Decision)
	assert.Nil(t, stored.ScoreLatencyMs)
	assert.True(t, scorer.called)
}

func TestSubmitPersistenceFailure(t *testing.T) {
	repo := new(MockApplicationInserter)
	scorer := &StubScorer{outcome: unscoredOutcome()}
	service := NewIngestionService(repo, scorer)

	repo.On("InsertApplication", mock.Anything, mock.Anything).Return("", consts.ErrorPersistenceFailed)

	_, err := service.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, consts.ErrorPersistenceFailed)
}

func unscoredOutcome() downstreams.ScoreOutcome {
	return downstreams.Unscored("model service not configured")
}
