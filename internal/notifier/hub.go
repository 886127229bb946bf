package notifier

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
)

const subscriberBuffer = 16

// Envelope - message gửi qua wire: tên event + payload.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Subscription - một subscriber đang nhận delta. Messages đọc từ C;
// channel được Hub đóng khi Unsubscribe.
type Subscription struct {
	ID string
	C  <-chan []byte
	ch chan []byte
}

// Hub fan-out state delta cho mọi subscriber hiện tại. Delivery là
// best-effort và non-blocking per subscriber: channel đầy thì message bị
// drop cho subscriber đó, mutator và các subscriber khác không bị chặn.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscription
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]*Subscription)}
}

// Subscribe đăng ký một subscriber mới với buffer riêng.
func (h *Hub) Subscribe() *Subscription {
	ch := make(chan []byte, subscriberBuffer)
	sub := &Subscription{ID: uuid.New().String(), C: ch, ch: ch}

	h.mu.Lock()
	h.subscribers[sub.ID] = sub
	total := len(h.subscribers)
	h.mu.Unlock()

	log.Printf("Subscriber kết nối. Tổng: %d", total)
	return sub
}

// Unsubscribe gỡ subscriber và đóng channel của nó. Gọi nhiều lần an toàn.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
		close(sub.ch)
	}
	total := len(h.subscribers)
	h.mu.Unlock()

	if ok {
		log.Printf("Subscriber ngắt kết nối. Tổng: %d", total)
	}
}

// Broadcast marshal envelope và gửi cho mọi subscriber, không bao giờ
// block: subscriber chậm (buffer đầy) bị drop message đó.
func (h *Hub) Broadcast(event string, payload any) {
	message, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		log.Printf("Lỗi marshal event %s: %v", event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subscribers {
		select {
		case sub.ch <- message:
		default:
			log.Printf("Buffer của subscriber %s đầy, drop message %s", sub.ID, event)
		}
	}
}

// Send gửi một message riêng cho một subscriber (ví dụ initialState khi
// vừa kết nối), cùng kỷ luật non-blocking như Broadcast.
func (h *Hub) Send(id string, event string, payload any) {
	message, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		log.Printf("Lỗi marshal event %s: %v", event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	sub, ok := h.subscribers[id]
	if !ok {
		return
	}
	select {
	case sub.ch <- message:
	default:
		log.Printf("Buffer của subscriber %s đầy, drop message %s", id, event)
	}
}

// Count trả về số subscriber hiện tại.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
