package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devmatch/devmatch-backend/internal/delivery/http/middleware"
	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/usecase/chat"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHandler(chatUseCase *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: chatUseCase}
}

// SendMessageRequest is the POST /matches/:id/messages body.
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListMessages handles GET /matches/:id/messages. Viewing the thread
// marks the counterpart's messages read.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	messages, err := h.chatUseCase.ListMessages(c.Request.Context(), matchID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authorized to view these messages"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// SendMessage handles POST /matches/:id/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	message, err := h.chatUseCase.SendMessage(c.Request.Context(), matchID, userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authorized to send messages to this match"})
		case errors.Is(err, domain.ErrEmptyContent):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to send message"})
		}
		return
	}

	c.JSON(http.StatusCreated, message)
}

func matchIDParam(c *gin.Context) (int64, bool) {
	matchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || matchID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return 0, false
	}
	return matchID, true
}
