package handlers

import (
	"net/http"
	"net/url"

	"github.com/git-abhijeet/credit-risk/internal/pkg/models"
	"github.com/git-abhijeet/credit-risk/internal/pkg/services"
	"github.com/git-abhijeet/credit-risk/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthServiceInterface
}

func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var body models.SignupRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.authService.Signup(c.Request.Context(), body)
	if err != nil {
		c.JSON(utils.GetErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body models.LoginRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), body)
	if err != nil {
		c.JSON(utils.GetErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.SetCookie("token", token, 0, "/", "", false, true)
	c.SetCookie("email", url.QueryEscape(user.Email), 0, "/", "", false, false)
	if user.Mobile != "" {
		c.SetCookie("mobile", url.QueryEscape(user.Mobile), 0, "/", "", false, false)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": user.ID.Hex(), "email": user.Email})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.SetCookie("email", "", -1, "/", "", false, false)
	c.SetCookie("mobile", "", -1, "/", "", false, false)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
