// internal/adapters/in/ws/order_feed.go
package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// OrderFeed pushes order events to the managers of the stores concerned.
// It is an http.Handler (upgrade endpoint) and a usecase.OrderEventPublisher.
type OrderFeed struct {
	upgrader websocket.Upgrader

	mu   sync.RWMutex
	subs map[string]map[*subscriber]struct{} // storeName -> subscribers
}

type subscriber struct {
	store string
	send  chan []byte
}

var _ usecase.OrderEventPublisher = (*OrderFeed)(nil)

// NewOrderFeed accepts connections from allowedOrigin ("*" allows any).
func NewOrderFeed(allowedOrigin string) *OrderFeed {
	allowed := strings.TrimSpace(allowedOrigin)
	return &OrderFeed{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowed == "" || allowed == "*" || origin == "" || origin == allowed
			},
		},
		subs: make(map[string]map[*subscriber]struct{}),
	}
}

// ServeHTTP expects an approved manager session in the request context.
func (f *OrderFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, ok := usecase.SessionFromContext(r.Context())
	if !ok || !s.IsManager() {
		http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
		return
	}

	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[order_feed] upgrade failed: %v", err)
		return
	}

	sub := &subscriber{store: s.StoreName, send: make(chan []byte, sendBuffer)}
	f.add(sub)
	log.Printf("[order_feed] subscribed uid=%s store=%s", s.UID, s.StoreName)

	go f.writePump(conn, sub)
	f.readPump(conn, sub)
}

// PublishOrderEvent never blocks; slow subscribers lose the event.
func (f *OrderFeed) PublishOrderEvent(_ context.Context, ev usecase.OrderEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[order_feed] marshal event: %v", err)
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, store := range ev.StoreNames {
		for sub := range f.subs[store] {
			select {
			case sub.send <- data:
			default:
				log.Printf("[order_feed] dropping event order=%s for slow subscriber store=%s", ev.OrderID, store)
			}
		}
	}
}

// Subscribers returns how many connections follow store.
func (f *OrderFeed) Subscribers(store string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs[store])
}

func (f *OrderFeed) add(sub *subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set := f.subs[sub.store]
	if set == nil {
		set = make(map[*subscriber]struct{})
		f.subs[sub.store] = set
	}
	set[sub] = struct{}{}
}

func (f *OrderFeed) remove(sub *subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set := f.subs[sub.store]
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(f.subs, sub.store)
	}
	close(sub.send)
}

// readPump only drains control frames; managers never send data.
func (f *OrderFeed) readPump(conn *websocket.Conn, sub *subscriber) {
	defer func() {
		f.remove(sub)
		_ = conn.Close()
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (f *OrderFeed) writePump(conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
