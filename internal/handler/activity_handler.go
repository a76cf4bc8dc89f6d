package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/middleware"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// ActivityHandler streams audit events to admin dashboards over WebSocket.
type ActivityHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *ActivityHandler {
	return &ActivityHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "activity_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// Stream godoc
// WS /ws/v1/admin/activity
// Upgrades to WebSocket and forwards every published audit event as JSON.
func (h *ActivityHandler) Stream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil || !claims.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access only"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Str("admin_id", claims.UserID.String()).Logger()
	wsLog.Info().Msg("Activity feed connected")

	pubsub := h.rdb.Subscribe(c.Request.Context(), config.AuditChannel)
	defer pubsub.Close()

	// Drain the read side so client close frames are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				wsLog.Warn().Msg("Activity subscription closed")
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				wsLog.Debug().Msg("Connection closed")
				return
			}
		case <-done:
			wsLog.Info().Msg("Activity feed disconnected")
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
