package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"secondbrain/internal/entity"
)

type chatUsecase interface {
	Chat(ctx context.Context, message string) (entity.ChatResult, error)
}

type ChatHandler struct {
	chat chatUsecase
}

func NewChatHandler(chat chatUsecase) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/api/chat", h.ask)
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, entity.NewValidationError("message", "message is required"))
		return
	}

	result, err := h.chat.Chat(c.Request.Context(), req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
