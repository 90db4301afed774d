package ws

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"socialstream/internal/auth"
	"socialstream/internal/config"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler runs the connection lifecycle: upgrade, credential check,
// registration, pumps.
type Handler struct {
	cfg      *config.Config
	hub      *Hub
	verifier *auth.Verifier
	log      *zap.Logger
}

func NewHandler(cfg *config.Config, hub *Hub, verifier *auth.Verifier, logger *zap.Logger) *Handler {
	return &Handler{cfg: cfg, hub: hub, verifier: verifier, log: logger}
}

// Serve handles GET /ws. The bearer credential rides in the `token` query
// parameter, with the Authorization header as a fallback. A missing or
// unverifiable credential closes the socket immediately with no payload,
// matching the upstream client's expectations.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	identity, err := h.verifier.Verify(bearerToken(c))
	if err != nil {
		h.log.Warn("websocket auth failed", zap.String("remote", c.Request.RemoteAddr), zap.Error(err))
		_ = conn.Close()
		return
	}

	client := NewClient(uuid.NewString(), identity.UserID, conn, h.hub, h.cfg.WSSendBuffer, h.log)
	h.hub.Register(client)
	h.log.Info("user connected",
		zap.String("user_id", identity.UserID),
		zap.String("conn_id", client.ID),
	)

	go client.WritePump()
	go client.ReadPump()
}

func bearerToken(c *gin.Context) string {
	if token := c.Query("token"); token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}
