package handlers

import (
	"net/http"

	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"
	"github.com/git-abhijeet/credit-risk/internal/pkg/services"
	"github.com/git-abhijeet/credit-risk/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	ingestionService services.IngestionServiceInterface
}

func NewApplicationHandler(ingestionService services.IngestionServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{ingestionService: ingestionService}
}

func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var body models.ApplicationRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.ingestionService.Submit(c.Request.Context(), body)
	if err != nil {
		logger.Info(c.Request.Context(), "application : submission rejected [%s]: %v", utils.GetErrorCode(err), err)
		c.JSON(utils.GetErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}
