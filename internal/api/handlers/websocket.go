package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/cricket-sim/internal/push"
)

type WebSocketHandler struct {
	hub      *push.Hub
	upgrader websocket.Upgrader
	logger   *logrus.Logger
}

// NewWebSocketHandler accepts connections from the listed origins. An empty
// list or "*" accepts any origin.
func NewWebSocketHandler(hub *push.Hub, allowedOrigins []string, logger *logrus.Logger) *WebSocketHandler {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return &WebSocketHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || allowed[origin]
			},
		},
	}
}

// HandleWebSocket upgrades the connection and subscribes it to the topics
// named in ?topics=match_update,live_simulation
// GET /ws
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	var topics []string
	for _, t := range strings.Split(c.Query("topics"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to upgrade connection")
		return
	}

	clientID := uuid.New().String()
	if err := conn.WriteJSON(gin.H{
		"type": "welcome",
		"data": gin.H{
			"message":   "Connected to cricket live feed",
			"client_id": clientID,
			"topics":    topics,
			"timestamp": time.Now().UTC(),
		},
	}); err != nil {
		h.logger.WithError(err).Warn("Failed to send welcome message")
		conn.Close()
		return
	}

	client := push.NewClient(h.hub, conn, clientID, topics)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
