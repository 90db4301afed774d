package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// Client is one live websocket connection. UserID is set before the client
// is registered with the hub; the rooms set is owned by the hub run loop.
type Client struct {
	ID     string
	UserID string

	// Send carries events queued for this connection; the hub writes it,
	// the write pump drains it, and the hub closes it on unregister.
	Send chan Event

	conn  *websocket.Conn
	rooms map[string]struct{}
	hub   *Hub
	log   *zap.Logger
}

func NewClient(id, userID string, conn *websocket.Conn, hub *Hub, sendBuffer int, logger *zap.Logger) *Client {
	return &Client{
		ID:     id,
		UserID: userID,
		conn:   conn,
		Send:   make(chan Event, sendBuffer),
		rooms:  make(map[string]struct{}),
		hub:    hub,
		log:    logger,
	}
}

// roomMessage is the only inbound message shape accepted from clients.
type roomMessage struct {
	Action string `json:"action"`
	Room   string `json:"room"`
}

// ReadPump consumes inbound messages until the connection drops, then
// unregisters the client. Disconnect cleanup is unconditional: it runs no
// matter how far the connection got.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("websocket read failed", zap.String("conn_id", c.ID), zap.Error(err))
			}
			return
		}
		var msg roomMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Room == "" {
			continue
		}
		// Room names are not authorized; any authenticated connection may
		// join any room. See DESIGN.md.
		switch msg.Action {
		case "join_room":
			c.hub.JoinRoom(c, msg.Room)
		case "leave_room":
			c.hub.LeaveRoom(c, msg.Room)
		}
	}
}

// WritePump serializes events onto the connection and keeps it alive with
// pings. It exits when the hub closes the send channel or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.Send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				c.log.Debug("websocket write failed", zap.String("conn_id", c.ID), zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
