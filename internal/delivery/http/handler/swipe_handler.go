package handler

import (
	"errors"
	"net/http"

	"github.com/devmatch/devmatch-backend/internal/delivery/http/middleware"
	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{swipeUseCase: swipeUseCase}
}

// CreateSwipe handles POST /swipe. The response carries the match only
// when this swipe completed a mutual like.
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req swipe.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.swipeUseCase.CreateSwipe(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadySwiped):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "already swiped on this profile"})
		case errors.Is(err, domain.ErrCannotSwipeSelf),
			errors.Is(err, domain.ErrInvalidAction),
			errors.Is(err, domain.ErrInvalidTarget):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create swipe"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
