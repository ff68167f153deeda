package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devmatch/devmatch-backend/internal/delivery/http/middleware"
	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/security"
	"github.com/devmatch/devmatch-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type RealtimeHandler struct {
	matchUseCase *match.MatchUseCase
	signer       *security.ChannelSigner
}

func NewRealtimeHandler(matchUseCase *match.MatchUseCase, signer *security.ChannelSigner) *RealtimeHandler {
	return &RealtimeHandler{
		matchUseCase: matchUseCase,
		signer:       signer,
	}
}

// TokenResponse is the GET /realtime/token body.
type TokenResponse struct {
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
	MatchID int64  `json:"match_id"`
}

// IssueToken handles GET /realtime/token?match_id=N. Membership is
// verified before signing; missing and foreign matches both come back
// as 403.
func (h *RealtimeHandler) IssueToken(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	matchID, err := strconv.ParseInt(c.Query("match_id"), 10, 64)
	if err != nil || matchID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match_id"})
		return
	}

	if _, err := h.matchUseCase.GetMatchForUser(c.Request.Context(), matchID, userID); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authorized for this match"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Token:   h.signer.Sign(userID, matchID),
		UserID:  userID,
		MatchID: matchID,
	})
}
