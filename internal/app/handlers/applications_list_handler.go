package handlers

import (
	"net/http"
	"strconv"

	"github.com/git-abhijeet/credit-risk/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type ApplicationsListHandler struct {
	listingService services.ListingServiceInterface
}

func NewApplicationsListHandler(listingService services.ListingServiceInterface) *ApplicationsListHandler {
	return &ApplicationsListHandler{listingService: listingService}
}

func (h *ApplicationsListHandler) AdminApplications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	items, err := h.listingService.RecentApplications(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "items": items})
}
