package handlers

import (
	"io"
	"net/http"

	"github.com/git-abhijeet/credit-risk/internal/pkg/downstreams"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RiskScoreHandler forwards ad-hoc scoring requests straight to the model
// service and relays its answer, status included.
type RiskScoreHandler struct {
	scoringClient *downstreams.ScoringClient
}

func NewRiskScoreHandler(scoringClient *downstreams.ScoringClient) *RiskScoreHandler {
	return &RiskScoreHandler{scoringClient: scoringClient}
}

func (h *RiskScoreHandler) RiskScore(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	status, body, err := h.scoringClient.PredictRaw(c.Request.Context(), payload)
	if err != nil {
		logger.Error(c.Request.Context(), "risk-score : model service call failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Model service error"})
		return
	}

	c.Data(status, "application/json", body)
}
