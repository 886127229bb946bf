package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Yordy2001/Smart-parkin/internal/api/handler"
	"github.com/Yordy2001/Smart-parkin/internal/service"
)

func SetupRouter(ps *service.ParkingService, uploadDir string) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Ảnh upload được serve static, khớp với URL trong CameraImage.
	r.Static("/uploads", uploadDir)

	// WebSocket endpoint cho real-time updates
	wsHandler := handler.NewWebSocketHandler(ps)
	r.GET("/ws", wsHandler.HandleWebSocket)

	api := r.Group("/api")
	{
		gateH := handler.NewGateHandler(ps)
		api.POST("/gate", gateH.RecordGateEvent)

		slotH := handler.NewSlotHandler(ps)
		api.POST("/slot/:id", slotH.UpdateSlot)

		cameraH := handler.NewCameraHandler(ps)
		cameraRoutes := api.Group("/camera/:camId")
		{
			cameraRoutes.POST("/upload", cameraH.UploadImage)
			cameraRoutes.GET("/latest", cameraH.LatestImage)
		}

		reservationH := handler.NewReservationHandler(ps)
		api.POST("/reservations", reservationH.CreateReservation)
		api.GET("/reservations", reservationH.ListReservations)
		api.DELETE("/reservations/:id", reservationH.CancelReservation)
		api.GET("/slots/availability", reservationH.Availability)

		statusH := handler.NewStatusHandler(ps)
		api.GET("/status", statusH.GetStatus)
		api.GET("/events", statusH.GetEvents)
	}

	return r
}
