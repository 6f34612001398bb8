package realtime

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studymood/studymood-backend/internal/pkg/logger"
)

type Event string

const (
	// EventSessionLogged fires on a group channel when a member logs a
	// study session.
	EventSessionLogged Event = "SessionLogged"
	// EventMemberJoined fires when someone is added to the group.
	EventMemberJoined Event = "MemberJoined"
	// EventMemberLeft fires when someone leaves the group.
	EventMemberLeft Event = "MemberLeft"
)

type Message struct {
	Channel string `json:"channel"`
	Event   Event  `json:"event"`
	Data    any    `json:"data,omitempty"`
}

// GroupChannel names the activity channel for one study group.
func GroupChannel(groupID uuid.UUID) string {
	return "group:" + groupID.String()
}

// SessionLoggedData is the payload broadcast when a member logs a session.
type SessionLoggedData struct {
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	Subject         string    `json:"subject"`
	DurationMinutes *int      `json:"duration,omitempty"`
	At              time.Time `json:"at"`
}

type Client struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Channels map[string]bool
	Outbound chan Message
}

// Hub fans activity messages out to connected stream clients by channel.
// Slow clients drop messages instead of blocking the broadcast.
type Hub struct {
	mu            sync.RWMutex
	log           *logger.Logger
	subscriptions map[string]map[*Client]bool
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:           log.With("component", "ActivityHub"),
		subscriptions: make(map[string]map[*Client]bool),
	}
}

func (h *Hub) NewClient(userID uuid.UUID) *Client {
	return &Client{
		ID:       uuid.New(),
		UserID:   userID,
		Channels: make(map[string]bool),
		Outbound: make(chan Message, 10),
	}
}

func (h *Hub) Subscribe(client *Client, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	channel = strings.TrimSpace(channel)
	if channel == "" {
		return
	}

	client.Channels[channel] = true
	clients, exists := h.subscriptions[channel]
	if !exists {
		clients = make(map[*Client]bool)
		h.subscriptions[channel] = clients
	}
	clients[client] = true

	h.log.Debug("activity client subscribed", "clientID", client.ID, "channel", channel)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range client.Channels {
		if subMap, ok := h.subscriptions[ch]; ok {
			delete(subMap, client)
			if len(subMap) == 0 {
				delete(h.subscriptions, ch)
			}
		}
	}
	client.Channels = make(map[string]bool)
	h.log.Debug("activity client removed", "clientID", client.ID)
}

func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if msg.Channel == "" {
		return
	}
	clients, ok := h.subscriptions[msg.Channel]
	if !ok {
		return
	}
	for c := range clients {
		select {
		case c.Outbound <- msg:
		default:
			h.log.Warn("dropping activity message; outbound buffer full", "clientID", c.ID)
		}
	}
}
