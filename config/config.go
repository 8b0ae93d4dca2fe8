package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Nó chứa thông tin cơ sở dữ liệu và cấu hình kênh gửi tin WhatsApp.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":4000"`             // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI"`                 // URL kết nối cơ sở dữ liệu (rỗng = chạy chế độ in-memory)
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"review_hub"` // Tên cơ sở dữ liệu

	// WhatsApp Cloud API
	WhatsApp_AccessToken   string `env:"WHATSAPP_ACCESS_TOKEN"`                                               // Access token của WhatsApp Cloud API
	WhatsApp_PhoneNumberID string `env:"WHATSAPP_PHONE_NUMBER_ID"`                                            // Phone number ID dùng làm sender identity
	WhatsApp_TemplateName  string `env:"WHATSAPP_TEMPLATE_NAME" envDefault:"review_request"`                  // Tên template gửi review request
	WhatsApp_TemplateLang  string `env:"WHATSAPP_TEMPLATE_LANG" envDefault:"en"`                              // Mã ngôn ngữ của template
	WhatsApp_APIBaseURL    string `env:"WHATSAPP_API_BASE_URL" envDefault:"https://graph.facebook.com/v18.0"` // Base URL của Graph API (đổi được khi test)
	Pilot_TemplateName     string `env:"PILOT_TEMPLATE_NAME" envDefault:"pilot_welcome"`                      // Tên template xác nhận pilot lead

	// SMTP (optional - dùng cho email xác nhận pilot lead)
	SMTP_Host      string `env:"SMTP_HOST"`                              // SMTP host (rỗng = không gửi email)
	SMTP_Port      int    `env:"SMTP_PORT" envDefault:"587"`             // SMTP port
	SMTP_Username  string `env:"SMTP_USERNAME"`                          // SMTP username
	SMTP_Password  string `env:"SMTP_PASSWORD"`                          // SMTP password
	SMTP_FromEmail string `env:"SMTP_FROM_EMAIL"`                        // Địa chỉ gửi
	SMTP_FromName  string `env:"SMTP_FROM_NAME" envDefault:"Review Hub"` // Tên hiển thị người gửi

	// CORS / Rate limit
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env (nếu có) rồi parse từ environment variables.
// File env không bắt buộc, thiếu file thì vẫn chạy với env vars hiện tại,
// cần thiết cho chế độ in-memory và khi chạy test.
func NewConfig(files ...string) *Configuration {
	// Ưu tiên file được truyền vào trực tiếp, không có thì tìm theo GO_ENV
	if len(files) == 0 {
		if envPath := getEnvPath(); envPath != "" {
			files = append(files, envPath)
		}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
			fmt.Printf("Không thể load file env tại %s: %v (tiếp tục với env vars)\n", f, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
