package handlers

import (
	"net/http"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	metricsService services.MetricsServiceInterface
}

func NewMetricsHandler(metricsService services.MetricsServiceInterface) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

func (h *MetricsHandler) AdminMetrics(c *gin.Context) {
	snapshot, err := h.metricsService.Snapshot(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"totals":      snapshot.Totals,
		"risk":        snapshot.Risk,
		"scoringRate": snapshot.ScoringRate,
		"latency":     snapshot.Latency,
		"generatedAt": snapshot.GeneratedAt,
	})
}
