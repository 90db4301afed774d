package ws

import (
	"context"

	"go.uber.org/zap"
)

type roomRequest struct {
	client *Client
	room   string
}

type directEvent struct {
	userID string
	event  Event
}

// Hub owns all live connections, their room memberships and the session
// registry. Every mutation funnels through Run's select loop, so the
// registry and room maps are only ever touched by one goroutine.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	join       chan roomRequest
	leave      chan roomRequest
	broadcast  chan Event
	direct     chan directEvent

	clients  map[*Client]struct{}
	rooms    map[string]map[*Client]struct{}
	registry *Registry
	log      *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		join:       make(chan roomRequest),
		leave:      make(chan roomRequest),
		broadcast:  make(chan Event, 64),
		direct:     make(chan directEvent, 64),
		clients:    make(map[*Client]struct{}),
		rooms:      make(map[string]map[*Client]struct{}),
		registry:   NewRegistry(),
		log:        logger,
	}
}

// UserRoom is the personal delivery channel for a user; targeted sends go
// through it.
func UserRoom(userID string) string {
	return "user_" + userID
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) JoinRoom(client *Client, room string) {
	h.join <- roomRequest{client: client, room: room}
}

func (h *Hub) LeaveRoom(client *Client, room string) {
	h.leave <- roomRequest{client: client, room: room}
}

// Broadcast delivers an event to every connected client. Fire-and-forget:
// there is no delivery confirmation and slow clients are skipped.
func (h *Hub) Broadcast(event Event) {
	eventsTotal.WithLabelValues(string(event.Kind), "broadcast").Inc()
	h.broadcast <- event
}

// SendToUser delivers an event to the user's active connections. A user
// with no registered connection makes this a no-op; the event is discarded,
// not queued.
func (h *Hub) SendToUser(userID string, event Event) {
	eventsTotal.WithLabelValues(string(event.Kind), "user").Inc()
	h.direct <- directEvent{userID: userID, event: event}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case req := <-h.join:
			h.joinRoom(req.client, req.room)
		case req := <-h.leave:
			h.leaveRoom(req.client, req.room)
		case event := <-h.broadcast:
			h.broadcastToAll(event)
		case de := <-h.direct:
			h.sendToUser(de.userID, de.event)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.clients[client] = struct{}{}
	connectionsGauge.Inc()
	if client.UserID != "" {
		h.registry.Register(client.UserID, client.ID)
		h.joinRoom(client, UserRoom(client.UserID))
	}
}

func (h *Hub) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		h.registry.Unregister(client.ID)
		return
	}
	delete(h.clients, client)
	connectionsGauge.Dec()
	for room := range client.rooms {
		h.leaveRoom(client, room)
	}
	h.registry.Unregister(client.ID)
	close(client.Send)
}

func (h *Hub) joinRoom(client *Client, room string) {
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][client] = struct{}{}
	client.rooms[room] = struct{}{}
}

func (h *Hub) leaveRoom(client *Client, room string) {
	delete(client.rooms, room)
	members := h.rooms[room]
	if members == nil {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

func (h *Hub) broadcastToAll(event Event) {
	for client := range h.clients {
		h.deliver(client, event)
	}
}

func (h *Hub) sendToUser(userID string, event Event) {
	if _, ok := h.registry.ConnID(userID); !ok {
		// User is offline; targeted events are dropped, never queued.
		return
	}
	for client := range h.rooms[UserRoom(userID)] {
		h.deliver(client, event)
	}
}

func (h *Hub) deliver(client *Client, event Event) {
	select {
	case client.Send <- event:
	default:
		droppedTotal.WithLabelValues(string(event.Kind)).Inc()
		h.log.Warn("client send buffer full, event dropped",
			zap.String("conn_id", client.ID),
			zap.String("user_id", client.UserID),
			zap.String("event", string(event.Kind)),
		)
	}
}
