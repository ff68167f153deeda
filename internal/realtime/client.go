package realtime

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 32
	maxFrameSize   = 16 * 1024
)

// frameTypeChat is the only inbound frame type the hub relays. The live
// channel is a notification side-channel; the persisted thread remains
// the system of record.
const frameTypeChat = "chat_message"

type inboundFrame struct {
	Type    string `json:"type"`
	MatchID int64  `json:"matchId"`
}

// Client is one live websocket connection bound to exactly one
// (user, room) pair for its whole lifetime.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string
	room   int64
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string, room int64) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		userID: userID,
		room:   room,
	}
}

func (c *Client) UserID() string { return c.userID }
func (c *Client) Room() int64    { return c.room }

// ReadLoop consumes inbound frames until the peer disconnects. A frame
// is relayed only when it is a chat message addressed to the room this
// connection authenticated into; anything else is silently dropped.
func (c *Client) ReadLoop() {
	defer func() {
		c.hub.Leave(c)
		close(c.send)
	}()

	c.conn.SetReadLimit(maxFrameSize)

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("user", c.userID).Msg("websocket read error")
			}
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			continue
		}
		if frame.Type != frameTypeChat || c.room == SentinelRoom || frame.MatchID != c.room {
			continue
		}

		stamped, err := stampServerTimestamp(raw)
		if err != nil {
			continue
		}
		c.hub.Broadcast(c.room, c, stamped)
	}
}

// WriteLoop drains the send buffer onto the wire. It exits when the
// channel closes (reader finished) or a write fails.
func (c *Client) WriteLoop() {
	defer c.conn.Close()

	for frame := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// stampServerTimestamp adds the relay-time server clock to the payload
// so receivers can order best-effort frames without trusting the
// sender's clock.
func stampServerTimestamp(raw []byte) ([]byte, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	payload["serverTimestamp"] = time.Now().UnixMilli()
	return json.Marshal(payload)
}
