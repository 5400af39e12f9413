package notify

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
	publishBuffer  = 256
)

const (
	logMsgClientConnected    = "notification client connected"
	logMsgClientGone         = "notification client disconnected"
	logMsgDropped            = "notification dropped"
	logMsgEncodingFailed     = "encoding notification failed"
	logMsgUpgradeFailed      = "websocket upgrade failed"
	logAttrUserID            = "user_id"
	logAttrKind              = "kind"
	logAttrReason            = "reason"
	logAttrError             = "error"
	labelOutcome             = "outcome"
	outcomeSent              = "sent"
	reasonNotConnected       = "not_connected"
	reasonSlowClient         = "slow_client"
	metricNotificationsTotal = "notify_notifications_total"
	metricClientsConnected   = "notify_clients_connected"
)

// ErrHubStopped is returned by Publish after Run has returned.
var ErrHubStopped = errors.New("notification hub stopped")

type client struct {
	userID uuid.UUID
	conn   *websocket.Conn
	send   chan []byte
}

// Hub routes notifications to the websocket connection of their user.
type Hub struct {
	upgrader   websocket.Upgrader
	mu         sync.RWMutex
	clients    map[uuid.UUID]*client
	register   chan *client
	unregister chan *client
	publish    chan Notification
	stopped    chan struct{}

	logger           circulation.ContextualLogger
	metricsCollector circulation.MetricsCollector
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithHubLogger sets the logger of the Hub.
func WithHubLogger(logger circulation.ContextualLogger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

// WithHubMetrics sets the metrics collector of the Hub.
func WithHubMetrics(collector circulation.MetricsCollector) HubOption {
	return func(h *Hub) {
		h.metricsCollector = collector
	}
}

// WithCheckOrigin replaces the origin check of the websocket upgrade. By default all origins are
// accepted since the identity comes from the trusted gateway headers.
func WithCheckOrigin(check func(r *http.Request) bool) HubOption {
	return func(h *Hub) {
		h.upgrader.CheckOrigin = check
	}
}

// NewHub creates a Hub. Run must be started before notifications are delivered.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients:    make(map[uuid.UUID]*client),
		register:   make(chan *client),
		unregister: make(chan *client),
		publish:    make(chan Notification, publishBuffer),
		stopped:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Run dispatches notifications until ctx is done, then closes all connections.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for userID, c := range h.clients {
				close(c.send)
				delete(h.clients, userID)
			}
			h.mu.Unlock()

			return

		case c := <-h.register:
			h.mu.Lock()
			if previous, ok := h.clients[c.userID]; ok {
				close(previous.send)
			}
			h.clients[c.userID] = c
			connected := len(h.clients)
			h.mu.Unlock()

			h.logInfo(ctx, logMsgClientConnected, logAttrUserID, c.userID.String())
			h.recordConnected(ctx, connected)

		case c := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[c.userID]; ok && current == c {
				delete(h.clients, c.userID)
				close(c.send)
			}
			connected := len(h.clients)
			h.mu.Unlock()

			h.logDebug(ctx, logMsgClientGone, logAttrUserID, c.userID.String())
			h.recordConnected(ctx, connected)

		case notification := <-h.publish:
			h.dispatch(ctx, notification)
		}
	}
}

// Publish queues a notification for delivery.
func (h *Hub) Publish(ctx context.Context, notification Notification) error {
	select {
	case h.publish <- notification:
		return nil
	case <-h.stopped:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Connected reports whether the user has an open notification connection.
func (h *Hub) Connected(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.clients[userID]

	return ok
}

// ServeWS upgrades the request and attaches the connection to userID.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already replied with an HTTP error
		h.logDebug(r.Context(), logMsgUpgradeFailed, logAttrError, err.Error())
		return
	}

	c := &client{userID: userID, conn: conn, send: make(chan []byte, sendBufferSize)}

	select {
	case h.register <- c:
	case <-h.stopped:
		_ = conn.Close()
		return
	}

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) dispatch(ctx context.Context, notification Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.clients[notification.UserID]
	if !ok {
		h.recordNotification(ctx, notification.Kind, reasonNotConnected)
		h.logDebug(ctx, logMsgDropped, logAttrUserID, notification.UserID.String(), logAttrKind, notification.Kind, logAttrReason, reasonNotConnected)
		return
	}

	payload, err := Encode(notification)
	if err != nil {
		h.logError(ctx, logMsgEncodingFailed, logAttrError, err.Error())
		return
	}

	select {
	case c.send <- payload:
		h.recordNotification(ctx, notification.Kind, outcomeSent)
	default:
		close(c.send)
		delete(h.clients, c.userID)
		h.recordNotification(ctx, notification.Kind, reasonSlowClient)
		h.logDebug(ctx, logMsgDropped, logAttrUserID, c.userID.String(), logAttrKind, notification.Kind, logAttrReason, reasonSlowClient)
	}
}

// readPump only keeps the connection alive, clients do not send anything.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.stopped:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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

func (h *Hub) recordNotification(ctx context.Context, kind, outcome string) {
	if h.metricsCollector == nil {
		return
	}

	labels := map[string]string{logAttrKind: kind, labelOutcome: outcome}
	if contextual, ok := h.metricsCollector.(circulation.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metricNotificationsTotal, labels)
		return
	}

	h.metricsCollector.IncrementCounter(metricNotificationsTotal, labels)
}

func (h *Hub) recordConnected(ctx context.Context, connected int) {
	if h.metricsCollector == nil {
		return
	}

	if contextual, ok := h.metricsCollector.(circulation.ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metricClientsConnected, float64(connected), nil)
		return
	}

	h.metricsCollector.RecordValue(metricClientsConnected, float64(connected), nil)
}

func (h *Hub) logDebug(ctx context.Context, msg string, args ...any) {
	orDiscard(h.logger).DebugContext(ctx, msg, args...)
}

func (h *Hub) logInfo(ctx context.Context, msg string, args ...any) {
	orDiscard(h.logger).InfoContext(ctx, msg, args...)
}

func (h *Hub) logError(ctx context.Context, msg string, args ...any) {
	orDiscard(h.logger).ErrorContext(ctx, msg, args...)
}
