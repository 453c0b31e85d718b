package websocket

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Config struct {
	ReadBufferSize   int
	WriteBufferSize  int
	HandshakeTimeout time.Duration
	PingInterval     time.Duration
	PongTimeout      time.Duration
	AllowedOrigins   []string
}

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	config   Config
}

func NewHandler(hub *Hub, config Config) *Handler {
	if config.PongTimeout == 0 {
		config.PongTimeout = 60 * time.Second
	}
	if config.PingInterval == 0 || config.PingInterval >= config.PongTimeout {
		config.PingInterval = (config.PongTimeout * 9) / 10
	}

	return &Handler{
		hub:    hub,
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:   config.ReadBufferSize,
			WriteBufferSize:  config.WriteBufferSize,
			HandshakeTimeout: config.HandshakeTimeout,
			CheckOrigin:      originChecker(config.AllowedOrigins),
		},
	}
}

// ServeWS upgrades the request and streams hub events to it.
func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := &Client{
		hub:        h.hub,
		conn:       conn,
		send:       make(chan []byte, 256),
		Actor:      c.GetString("clerk_user_id"),
		pingPeriod: h.config.PingInterval,
		pongWait:   h.config.PongTimeout,
	}
	if !h.hub.add(client) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func originChecker(allowed []string) func(r *http.Request) bool {
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		for _, o := range allowed {
			if strings.EqualFold(o, origin) || strings.EqualFold(o, u.Host) {
				return true
			}
		}
		return false
	}
}
