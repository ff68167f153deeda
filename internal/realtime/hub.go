package realtime

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// SentinelRoom is where unauthenticated connections are parked. The hub
// never relays into or out of it, so a connection with a bad credential
// stays open but mute (fail closed).
const SentinelRoom int64 = 0

// Hub owns the live-connection registry: a mapping from match id to the
// set of connections currently bound to that room. All access goes
// through the mutex; broadcast iteration tolerates concurrent
// join/leave.
type Hub struct {
	mu    sync.RWMutex
	rooms map[int64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[int64]map[*Client]struct{}),
	}
}

// Join registers the connection under its bound room.
func (h *Hub) Join(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[c.room]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[c.room] = room
	}
	room[c] = struct{}{}
}

// Leave removes the connection so no broadcast ever targets a stale
// entry.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[c.room]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.room)
		}
	}
}

// Broadcast relays the frame to every connection in the room except the
// sender. Sends are fire-and-forget: a peer whose buffer is full is
// skipped so a slow or dead receiver never stalls the rest of the room.
func (h *Hub) Broadcast(roomID int64, sender *Client, frame []byte) {
	if roomID == SentinelRoom {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[roomID] {
		if c == sender {
			continue
		}
		select {
		case c.send <- frame:
		default:
			log.Warn().Int64("room", roomID).Str("user", c.userID).
				Msg("dropping frame for slow receiver")
		}
	}
}

// RoomSize returns the number of live connections bound to the room.
func (h *Hub) RoomSize(roomID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}
