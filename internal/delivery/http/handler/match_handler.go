package handler

import (
	"net/http"

	"github.com/devmatch/devmatch-backend/internal/delivery/http/middleware"
	"github.com/devmatch/devmatch-backend/internal/realtime"
	"github.com/devmatch/devmatch-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
	presence     *realtime.Presence
}

func NewMatchHandler(matchUseCase *match.MatchUseCase, presence *realtime.Presence) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
		presence:     presence,
	}
}

// ListMatches handles GET /matches: active matches newest first, each
// enriched with the counterpart user and their live-connection status.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	summaries, err := h.matchUseCase.ListMatches(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch matches"})
		return
	}

	for _, s := range summaries {
		if s.Counterpart != nil {
			s.Online = h.presence.IsOnline(c.Request.Context(), s.Counterpart.ID)
		}
	}

	c.JSON(http.StatusOK, summaries)
}
