package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yordy2001/Smart-parkin/internal/api"
	"github.com/Yordy2001/Smart-parkin/internal/config"
	"github.com/Yordy2001/Smart-parkin/internal/notifier"
	"github.com/Yordy2001/Smart-parkin/internal/service"
	"github.com/Yordy2001/Smart-parkin/internal/state"
	"github.com/Yordy2001/Smart-parkin/internal/storage"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	log.Println("Cấu hình đã được tải.")

	// 2. Upload storage - fail ở đây thì không start server
	imageStore := storage.NewImageStore(cfg.UploadDir)
	if err := imageStore.EnsureBaseDir(); err != nil {
		log.Fatalf("Không thể khởi tạo thư mục upload: %v", err)
	}

	// 3. Notifier hub + state core
	hub := notifier.NewHub()
	store := state.NewStore(cfg.SlotsCount, cfg.MaxImagesPerCam, state.WithNotifier(hub))

	// 4. Service + Router
	parkingService := service.NewParkingService(store, hub, imageStore, cfg.MaxUploadBytes)
	router := api.SetupRouter(parkingService, cfg.UploadDir)

	// 5. Start HTTP Server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server Parqueo Inteligente đang chạy trên port %s", cfg.ServerPort)
		log.Printf("   - Số chỗ đỗ: %d", cfg.SlotsCount)
		log.Printf("   - Số ESP32-CAM: %d", cfg.CamerasCount)
		log.Printf("   - Tối đa %d ảnh/camera", cfg.MaxImagesPerCam)
		log.Println("Endpoints:")
		log.Println("   POST /api/gate - Xe vào/ra")
		log.Println("   POST /api/slot/:id - Trạng thái chỗ đỗ")
		log.Println("   POST /api/camera/:camId/upload - Upload ảnh")
		log.Println("   GET  /api/status - Trạng thái toàn bãi")
		log.Println("   GET  /ws - Real-time updates")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Lỗi ListenAndServe(): %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Đang tắt server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server buộc phải tắt: %v", err)
	}

	log.Println("Server đã tắt.")
}
