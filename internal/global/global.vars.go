// Package global chứa các biến toàn cục của ứng dụng, được khởi tạo một lần
// lúc startup (cmd/server/init.go) và dùng chung cho các tầng service/handler.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"review_hub/config"
	basesvc "review_hub/internal/api/base/service"
	reviewmodels "review_hub/internal/api/review/models"
	"review_hub/internal/delivery/channels"
	"review_hub/internal/registry"
)

// Chế độ lưu trữ của ứng dụng, chọn một lần lúc khởi động.
const (
	StorageModeMongoDB = "mongodb" // Lưu trữ trên MongoDB
	StorageModeMemory  = "memory"  // Lưu trữ trên bộ nhớ (local dev, test)
)

// Các biến toàn cục
var Validate *validator.Validate          // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client         // Phiên kết nối tới MongoDB (nil khi chạy chế độ memory)
var ServerConfig *config.Configuration    // Cấu hình của server
var StorageMode string = StorageModeMemory // Chế độ lưu trữ hiện tại

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections

// Các repository theo domain, implementation (mongo/memory) được gán lúc init
var BusinessRepo basesvc.Repository[reviewmodels.Business]
var CustomerRepo basesvc.Repository[reviewmodels.Customer]
var PilotLeadRepo basesvc.Repository[reviewmodels.PilotLead]

// Kênh gửi WhatsApp template, gán lúc init
var WhatsAppSender channels.TemplateSender
