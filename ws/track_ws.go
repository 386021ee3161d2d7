package ws

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/services"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackHub คือศูนย์กลางของหน้า order tracking ผ่าน WebSocket
// room ต่อหนึ่ง order — ทุก transition จะ broadcast เข้า room นั้น
type TrackHub struct {
	clients    map[string]map[*websocket.Conn]bool // roomKey -> set of clients
	broadcast  chan StatusUpdate
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	orders     *services.OrderService
}

type Subscription struct {
	Conn    *websocket.Conn
	RoomKey string
	UserID  uint
}

// StatusUpdate = สถานะใหม่ที่จะกระจายให้ทุกคนที่เปิดหน้า tracking อยู่
type StatusUpdate struct {
	Kind    string `json:"kind"` // grocery | restaurant
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

func roomKey(kind string, orderID uint) string {
	return fmt.Sprintf("%s:%d", kind, orderID)
}

func NewTrackHub(orders *services.OrderService) *TrackHub {
	return &TrackHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusUpdate),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		orders:     orders,
	}
}

// NotifyStatus ให้ OrderService เรียกหลัง transition สำเร็จ (services.StatusNotifier)
func (h *TrackHub) NotifyStatus(kind string, orderID uint, status string) {
	h.broadcast <- StatusUpdate{Kind: kind, OrderID: orderID, Status: status}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *TrackHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RoomKey] == nil {
				h.clients[sub.RoomKey] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RoomKey][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RoomKey][sub.Conn]; ok {
				delete(h.clients[sub.RoomKey], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case upd := <-h.broadcast:
			key := roomKey(upd.Kind, upd.OrderID)
			h.mu.Lock()
			for conn := range h.clients[key] {
				if err := conn.WriteJSON(upd); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[key], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:kind/:id
func (h *TrackHub) HandleWebSocket(c *gin.Context) {
	kind := c.Param("kind")
	if kind != services.OrderKindGrocery && kind != services.OrderKindRestaurant {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order kind"})
		return
	}

	var orderID uint
	fmt.Sscan(c.Param("id"), &orderID)

	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	// ลูกค้าดูได้เฉพาะ order ของตัวเอง — role อื่นผ่าน middleware มาแล้ว
	if role == "customer" {
		var err error
		if kind == services.OrderKindGrocery {
			_, err = h.orders.DetailForUser(userID, orderID)
		} else {
			_, err = h.orders.RestaurantDetailForUser(userID, orderID)
		}
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, RoomKey: roomKey(kind, orderID), UserID: userID}
	h.register <- sub

	go h.keepAlive(sub)
}

// อ่านทิ้งไว้เฉย ๆ เพื่อจับตอน client หลุด
func (h *TrackHub) keepAlive(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
