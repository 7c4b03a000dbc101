package handlers

import (
	"net/http"
	"sync"
	"time"

	"todo_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMsgSize     = 1 << 12 // 4 KB
	feedBufferSize = 16
)

// todoEvent is pushed to the owner's open connections whenever one of their
// todos changes.
type todoEvent struct {
	Type string       `json:"type"` // created | updated
	Todo *models.Todo `json:"todo"`
}

// todoFeed fans out todo events to per-user subscribers. Subscribers with a
// full buffer miss events rather than block the request path.
type todoFeed struct {
	mu   sync.Mutex
	subs map[string]map[chan todoEvent]struct{}
}

func newTodoFeed() *todoFeed {
	return &todoFeed{subs: make(map[string]map[chan todoEvent]struct{})}
}

func (f *todoFeed) subscribe(userID string) chan todoEvent {
	ch := make(chan todoEvent, feedBufferSize)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs[userID] == nil {
		f.subs[userID] = make(map[chan todoEvent]struct{})
	}
	f.subs[userID][ch] = struct{}{}
	return ch
}

func (f *todoFeed) unsubscribe(userID string, ch chan todoEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if set, ok := f.subs[userID]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(f.subs, userID)
		}
	}
}

func (f *todoFeed) publish(userID string, ev todoEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subs[userID] {
		select {
		case ch <- ev:
		default: // slow consumer, drop
		}
	}
}

// Upgrader for HTTP -> WebSocket. Consider tightening CheckOrigin in production.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsTodos streams the authenticated owner's todo events over a WebSocket.
// Runs behind the identity middleware like every other /todo route.
func (h *Handler) wsTodos(c *gin.Context) {
	userID := requesterID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	events := h.feed.subscribe(userID)
	defer h.feed.unsubscribe(userID, events)

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
		case ev := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
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
