package realtime

import (
	"context"
	"net/http"
	"strconv"

	"github.com/devmatch/devmatch-backend/internal/security"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers cannot set Authorization headers on websocket dials; the
	// signed token in the query string is the credential instead.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades websocket connections and binds each one to a room.
type Handler struct {
	hub      *Hub
	signer   *security.ChannelSigner
	presence *Presence
}

func NewHandler(hub *Hub, signer *security.ChannelSigner, presence *Presence) *Handler {
	return &Handler{
		hub:      hub,
		signer:   signer,
		presence: presence,
	}
}

// Serve handles GET /ws. The signed token is the preferred credential;
// raw matchId/userId query params survive as a legacy fallback. A bad
// token does not reject the connection, it binds it to the sentinel
// room where nothing ever relays.
func (h *Handler) Serve(c *gin.Context) {
	userID, room := h.resolveIdentity(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := NewClient(h.hub, conn, userID, room)
	h.hub.Join(client)

	if err := h.presence.MarkOnline(c.Request.Context(), userID); err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("presence update failed")
	}

	log.Info().Str("user", userID).Int64("room", room).Msg("websocket connected")

	go client.WriteLoop()
	client.ReadLoop()

	// The request context is gone once the connection closes.
	if err := h.presence.MarkOffline(context.Background(), userID); err != nil {
		log.Debug().Err(err).Str("user", userID).Msg("presence cleanup failed")
	}
	log.Info().Str("user", userID).Int64("room", room).Msg("websocket disconnected")
}

func (h *Handler) resolveIdentity(c *gin.Context) (userID string, room int64) {
	if token := c.Query("token"); token != "" {
		uid, matchID, err := h.signer.Verify(token)
		if err != nil {
			log.Warn().Msg("websocket token verification failed")
			return "", SentinelRoom
		}
		return uid, matchID
	}

	// Legacy fallback: unsigned query params. Deprecated and logged as
	// such; the signed path should become mandatory.
	matchID, err := strconv.ParseInt(c.Query("match_id"), 10, 64)
	if err != nil || matchID <= 0 {
		matchID = SentinelRoom
	}
	userID = c.Query("user_id")
	if matchID != SentinelRoom {
		log.Warn().Str("user", userID).Int64("room", matchID).
			Msg("websocket connected via legacy unsigned params")
	}
	return userID, matchID
}
