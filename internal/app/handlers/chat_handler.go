package handlers

import (
	"net/http"

	"github.com/git-abhijeet/credit-risk/internal/pkg/downstreams"
	"github.com/git-abhijeet/credit-risk/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	assistantClient *downstreams.AssistantClient
}

func NewChatHandler(assistantClient *downstreams.AssistantClient) *ChatHandler {
	return &ChatHandler{assistantClient: assistantClient}
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var body chatRequest

	if err := c.ShouldBindJSON(&body); err != nil || body.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `message`"})
		return
	}

	reply, err := h.assistantClient.Ask(c.Request.Context(), body.Message, body.UserID)
	if err != nil {
		c.JSON(utils.GetErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
