package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"review_hub/internal/database"
	"review_hub/internal/global"
	"review_hub/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi động Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"address": cfg.Address,
		"storage": global.StorageMode,
	}).Info("Starting Fiber server...")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()

	// Khởi tạo các biến toàn cục: config, storage mode, repositories, channels
	InitGlobal()

	// Đóng kết nối MongoDB khi server dừng (nếu đang chạy chế độ mongodb)
	if global.MongoDB_Session != nil {
		defer database.CloseInstance(global.MongoDB_Session)
	}

	// Chạy Fiber server trên main thread
	main_thread()
}
