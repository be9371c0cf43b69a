package downstreams

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"
)

// predictRequest is the model service contract: the submitted application
// fields wrapped under a payload key.
type predictRequest struct {
	Payload models.ApplicationRequest `json:"payload"`
}

type predictResponse struct {
	PredictedClass string             `json:"predicted_class"`
	Band           string             `json:"band"`
	Probabilities  map[string]float64 `json:"probabilities"`
	Explanation    []string           `json:"explanation"`
}

// ScoreOutcome carries either a decision with its round-trip latency or the
// reason scoring yielded nothing. Callers treat Unscored as a normal
// outcome, never as an error.
type ScoreOutcome struct {
	Scored         bool
	Decision       *models.Decision
	LatencyMs      int64
	UnscoredReason string
}

func Scored(decision *models.Decision, latencyMs int64) ScoreOutcome {
	return ScoreOutcome{Scored: true, Decision: decision, LatencyMs: latencyMs}
}

func Unscored(reason string) ScoreOutcome {
	return ScoreOutcome{Scored: false, UnscoredReason: reason}
}

type ScoringClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewScoringClient(baseURL string, timeout time.Duration) *ScoringClient {
	return &ScoringClient{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// Score asks the model service for a decision. One attempt, bounded by the
// configured timeout; any failure mode folds into an Unscored outcome so the
// caller's flow never aborts on scoring trouble.
func (c *ScoringClient) Score(ctx context.Context, payload models.ApplicationRequest) ScoreOutcome {
	if c.baseURL == "" {
		return Unscored("model service not configured")
	}

	body, err := json.Marshal(predictRequest{Payload: payload})
	if err != nil {
		return Unscored("failed to encode payload")
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return Unscored("failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn(ctx, "scoring : model service unreachable: %v", err)
		return Unscored("model service unreachable or timed out")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn(ctx, "scoring : failed reading model service response: %v", err)
		return Unscored("failed reading model service response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn(ctx, "scoring : model service returned status %d", resp.StatusCode)
		return Unscored("model service returned non-success status")
	}

	latency := time.Since(start).Milliseconds()

	// A malformed success body still counts as scored; decision fields stay
	// at their zero values rather than being synthesized.
	var data predictResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		logger.Warn(ctx, "scoring : malformed model service response: %v", err)
		data = predictResponse{}
	}

	decision := &models.Decision{
		PredictedClass: data.PredictedClass,
		Band:           data.Band,
		Probabilities:  data.Probabilities,
		Explanation:    data.Explanation,
	}

	return Scored(decision, latency)
}

// PredictRaw forwards an arbitrary payload to the model service and relays
// its status and body unchanged. Used by the risk-score passthrough route.
func (c *ScoringClient) PredictRaw(ctx context.Context, payload []byte) (int, []byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	wrapped, err := json.Marshal(map[string]json.RawMessage{"payload": payload})
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(wrapped))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}
