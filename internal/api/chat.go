package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcoshealth/pcos-assistant/backend/internal/service"
	"github.com/pcoshealth/pcos-assistant/backend/internal/types"
)

// ChatHandler handles assistant chat messages.
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// RegisterRoutes registers the chat routes
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/chat", h.SendMessage)
}

// SendMessage relays one message to the assistant and returns its reply.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.chatService.Respond(c.Request.Context(), req.Message))
}
