package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Yordy2001/Smart-parkin/internal/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Cho phép kết nối từ mọi nguồn
	},
}

type WebSocketHandler struct {
	parkingService *service.ParkingService
}

func NewWebSocketHandler(ps *service.ParkingService) *WebSocketHandler {
	return &WebSocketHandler{parkingService: ps}
}

// GET /ws
// Client vừa kết nối nhận ngay full snapshot (event "initialState"), sau
// đó là các delta: slotUpdate, parkingStats, newReservation,
// reservationCancelled.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Không thể upgrade lên WebSocket: %v", err)
		return
	}

	sub := h.parkingService.Subscribe()

	// Write pump: bơm messages từ hub ra connection. Kết thúc khi
	// subscription bị đóng.
	go func() {
		defer conn.Close()
		for message := range sub.C {
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Lỗi ghi WebSocket: %v", err)
				h.parkingService.Unsubscribe(sub.ID)
				return
			}
		}
	}()

	// Read pump: giữ connection sống và phát hiện disconnect.
	go func() {
		defer h.parkingService.Unsubscribe(sub.ID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("Lỗi WebSocket: %v", err)
				}
				return
			}
		}
	}()
}
