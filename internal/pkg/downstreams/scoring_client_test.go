package downstreams

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() models.ApplicationRequest {
	return models.ApplicationRequest{
		FullName:      "Asha Verma",
		Email:         "asha@example.com",
		PAN:           "ABCDE1234F",
		Aadhaar:       "123456789012",
		MonthlyIncome: 52000,
		LoanAmount:    250000,
	}
}

func TestScoreSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"predicted_class": "P2",
			"band": "medium",
			"probabilities": {"P1": 0.1, "P2": 0.7, "P3": 0.15, "P4": 0.05},
			"explanation": ["NETMONTHLYINCOME (importance 0.412)"],
			"model_version": "should-not-leak"
		}`))
	}))
	defer server.Close()

	client := NewScoringClient(server.URL, 5*time.Second)
	outcome := client.Score(context.Background(), samplePayload())

	require.True(t, outcome.Scored)
	require.NotNil(t, outcome.Decision)
	assert.Equal(t, "P2", outcome.Decision.PredictedClass)
	assert.Equal(t, "medium", outcome.Decision.Band)
	assert.InDelta(t, 0.7, outcome.Decision.Probabilities["P2"], 1e-9)
	assert.Equal(t, []string{"NETMONTHLYINCOME (importance 0.412)"}, outcome.Decision.Explanation)
	assert.GreaterOrEqual(t, outcome.LatencyMs, int64(0))
}

func TestScoreNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewScoringClient(server.URL, 5*time.Second)
	outcome := client.Score(context.Background(), samplePayload())

	assert.False(t, outcome.Scored)
	assert.Nil(t, outcome.Decision)
	assert.NotEmpty(t, outcome.UnscoredReason)
}

func TestScoreTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"band":"low"}`))
	}))
	defer server.Close()

	client := NewScoringClient(server.URL, 20*time.Millisecond)
	outcome := client.Score(context.Background(), samplePayload())

	assert.False(t, outcome.Scored)
}

func TestScoreUnreachable(t *testing.T) {
	client := NewScoringClient("http://127.0.0.1:1", 100*time.Millisecond)
	outcome := client.Score(context.Background(), samplePayload())

	assert.False(t, outcome.Scored)
}

func TestScoreNotConfigured(t *testing.T) {
	client := NewScoringClient("", 5*time.Second)
	outcome := client.Score(context.Background(), samplePayload())

	assert.False(t, outcome.Scored)
	assert.Equal(t, "model service not configured", outcome.UnscoredReason)
}

func TestScoreMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewScoringClient(server.URL, 5*time.Second)
	outcome := client.Score(context.Background(), samplePayload())

	// A 2xx with a malformed body is still a scored outcome with empty
	// decision fields; nothing is synthesized.
	require.True(t, outcome.Scored)
	require.NotNil(t, outcome.Decision)
	assert.Empty(t, outcome.Decision.PredictedClass)
	assert.Empty(t, outcome.Decision.Band)
	assert.Nil(t, outcome.Decision.Probabilities)
	assert.Nil(t, outcome.Decision.Explanation)
}

func TestPredictRawRelaysStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"bad feature vector"}`))
	}))
	defer server.Close()

	client := NewScoringClient(server.URL, 5*time.Second)
	status, body, err := client.PredictRaw(context.Background(), []byte(`{"monthlyIncome": 52000}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.JSONEq(t, `{"detail":"bad feature vector"}`, string(body))
}
