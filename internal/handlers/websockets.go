package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/praneeth00007/backendd/internal/logger"
	"github.com/praneeth00007/backendd/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket. Consider tightening CheckOrigin in production.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins for production
}

// AlertHub fans out budget alerts to every connected WebSocket client.
// It satisfies service.Notifier so the budget layer can publish alerts
// without knowing about transport details.
type AlertHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	log   *logger.Logger
}

var _ service.Notifier = (*AlertHub)(nil)

func NewAlertHub(log *logger.Logger) *AlertHub {
	return &AlertHub{
		conns: make(map[*websocket.Conn]struct{}),
		log:   log,
	}
}

func (hub *AlertHub) register(conn *websocket.Conn) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.conns[conn] = struct{}{}
}

func (hub *AlertHub) deregister(conn *websocket.Conn) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	delete(hub.conns, conn)
}

// ClientCount reports how many clients are currently connected.
func (hub *AlertHub) ClientCount() int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.conns)
}

// LimitExceeded broadcasts the alert to every connected client. Clients
// that fail the write are dropped; a broadcast never returns an error.
func (hub *AlertHub) LimitExceeded(ctx context.Context, alert service.Alert) error {
	env := wsEnvelope{Type: "limit_exceeded", Data: alert}

	hub.mu.Lock()
	defer hub.mu.Unlock()
	for conn := range hub.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(env); err != nil {
			if hub.log != nil {
				hub.log.Infow("ws_broadcast_failed", "err", err)
			}
			_ = conn.Close()
			delete(hub.conns, conn)
		}
	}
	return nil
}

func (h *Handler) wsAlerts(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	h.hub.register(conn)
	defer h.hub.deregister(conn)

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		}
	}
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}
