package main

import (
	"github.com/sirupsen/logrus"

	"review_hub/config"
	basesvc "review_hub/internal/api/base/service"
	reviewmodels "review_hub/internal/api/review/models"
	"review_hub/internal/database"
	"review_hub/internal/delivery/channels"
	"review_hub/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục của ứng dụng.
// Thứ tự quan trọng: config trước, storage sau (storage cần config).
func InitGlobal() {
	initValidator() // Khởi tạo validator
	initConfig()    // Khởi tạo cấu hình server
	initStorage()   // Chọn chế độ lưu trữ và khởi tạo các repository
	initChannels()  // Khởi tạo các kênh gửi tin
}

// initValidator khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server từ file env và environment variables
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatal("Failed to load server configuration")
	}
	logrus.Info("Initialized server configuration")
}

// initStorage chọn chế độ lưu trữ một lần lúc khởi động.
// Có MONGODB_CONNECTION_URI và connect+ping thành công thì chạy MongoDB,
// ngược lại log warning và chạy in-memory cho cả vòng đời process.
// Không có chuyện nâng cấp chế độ lúc runtime, server chỉ sẵn sàng nhận
// request sau khi các repository đã được gán xong.
func initStorage() {
	cfg := global.ServerConfig

	if cfg.MongoDB_ConnectionURI != "" {
		client, err := database.GetInstance(cfg)
		if err == nil {
			global.MongoDB_Session = client
			global.StorageMode = global.StorageModeMongoDB
			initMongoRepositories()
			logrus.Info("Storage mode: MongoDB")
			return
		}
		logrus.WithError(err).Warn("Không kết nối được MongoDB, chuyển sang chế độ in-memory")
	} else {
		logrus.Warn("MONGODB_CONNECTION_URI trống, chạy chế độ in-memory (dữ liệu mất khi restart)")
	}

	global.StorageMode = global.StorageModeMemory
	initMemoryRepositories()
	logrus.Info("Storage mode: in-memory")
}

// initMemoryRepositories gán các repository in-memory
func initMemoryRepositories() {
	global.BusinessRepo = basesvc.NewMemoryRepository[reviewmodels.Business]()
	global.CustomerRepo = basesvc.NewMemoryRepository[reviewmodels.Customer]()
	global.PilotLeadRepo = basesvc.NewMemoryRepository[reviewmodels.PilotLead]()
}

// initChannels khởi tạo kênh gửi WhatsApp template
func initChannels() {
	cfg := global.ServerConfig
	global.WhatsAppSender = channels.NewWhatsAppSender(
		cfg.WhatsApp_AccessToken,
		cfg.WhatsApp_PhoneNumberID,
		cfg.WhatsApp_APIBaseURL,
	)
	logrus.Info("Initialized delivery channels")
}
