package handler

import (
	"net/http"
	"strconv"

	"github.com/devmatch/devmatch-backend/internal/delivery/http/middleware"
	"github.com/devmatch/devmatch-backend/internal/usecase/discover"
	"github.com/gin-gonic/gin"
)

type DiscoverHandler struct {
	discoverUseCase *discover.DiscoverUseCase
}

func NewDiscoverHandler(discoverUseCase *discover.DiscoverUseCase) *DiscoverHandler {
	return &DiscoverHandler{discoverUseCase: discoverUseCase}
}

// ListCandidates handles GET /discover?limit=N
func (h *DiscoverHandler) ListCandidates(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, err := h.discoverUseCase.ListCandidates(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch discovery profiles"})
		return
	}

	c.JSON(http.StatusOK, users)
}
