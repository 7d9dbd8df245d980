package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// pending updates held while the hub loop catches up
	broadcastBuffer = 64
	// a client that cannot take a frame within this window is dropped
	writeWait = 5 * time.Second
)

// StatusUpdate is pushed to a user when one of their orders moves.
type StatusUpdate struct {
	OrderID    uint   `json:"orderId"`
	StatusID   uint   `json:"statusId"`
	StatusName string `json:"statusName"`
}

type subscription struct {
	conn   *websocket.Conn
	userID uint
}

// OrderHub fans order-status changes out to the connected clients of
// each user. One user may hold several connections (several tabs).
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> connections
	broadcast  chan broadcastUpdate
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	log        *zap.Logger
}

type broadcastUpdate struct {
	userID uint
	update StatusUpdate
}

func NewOrderHub(log *zap.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastUpdate, broadcastBuffer),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		log:        log,
	}
}

// Run owns the client registry. Call it once, in its own goroutine.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.userID] == nil {
				h.clients[sub.userID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.userID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.userID][sub.conn]; ok {
				delete(h.clients[sub.userID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.userID] {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(msg.update); err != nil {
					h.log.Warn("ws write failed", zap.Error(err))
					conn.Close()
					delete(h.clients[msg.userID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderStatusChanged implements services.StatusBroadcaster. It never
// blocks the caller: a full buffer drops the update, the client sees
// the current status on its next fetch.
func (h *OrderHub) OrderStatusChanged(userID, orderID, statusID uint, statusName string) {
	msg := broadcastUpdate{
		userID: userID,
		update: StatusUpdate{OrderID: orderID, StatusID: statusID, StatusName: statusName},
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn("order status broadcast dropped",
			zap.Uint("userId", userID), zap.Uint("orderId", orderID))
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userIDVal, ok := c.Get("userId")
	userID, _ := userIDVal.(uint)
	if !ok || userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	sub := subscription{conn: conn, userID: userID}
	h.register <- sub

	go h.keepAlive(sub)
}

// keepAlive drains the connection until the client goes away; clients
// only listen on this socket, they never send.
func (h *OrderHub) keepAlive(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}
