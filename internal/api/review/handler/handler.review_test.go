// Package reviewhdl - Test contract của các endpoint qua app.Test ở chế độ in-memory.
package reviewhdl

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	"review_hub/config"
	basesvc "review_hub/internal/api/base/service"
	reviewmodels "review_hub/internal/api/review/models"
	"review_hub/internal/global"
)

// noopSender không gửi gì, dùng cho test handler
type noopSender struct{}

func (noopSender) SendTemplate(ctx context.Context, to, templateName, langCode string, bodyParams []string) error {
	return nil
}

// newTestApp dựng app fiber với repos in-memory mới cho từng test
func newTestApp() *fiber.App {
	global.ServerConfig = &config.Configuration{
		Address:               ":4000",
		WhatsApp_TemplateName: "review_request",
		WhatsApp_TemplateLang: "en",
		Pilot_TemplateName:    "pilot_welcome",
	}
	global.InitValidator()
	global.StorageMode = global.StorageModeMemory
	global.BusinessRepo = basesvc.NewMemoryRepository[reviewmodels.Business]()
	global.CustomerRepo = basesvc.NewMemoryRepository[reviewmodels.Customer]()
	global.PilotLeadRepo = basesvc.NewMemoryRepository[reviewmodels.PilotLead]()
	global.WhatsAppSender = noopSender{}

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/health", HandleHealth)

	businessHandler := NewBusinessHandler()
	customerHandler := NewCustomerHandler()
	pilotHandler := NewPilotLeadHandler()
	campaignHandler := NewCampaignHandler()

	api.Post("/pilot", pilotHandler.HandleCreatePilotLead)
	api.Post("/businesses", businessHandler.HandleCreateBusiness)
	api.Get("/businesses/:id/summary", businessHandler.HandleBusinessSummary)
	api.Post("/customers/import", customerHandler.HandleImportCustomers)
	api.Post("/campaigns/:businessId/send-review-requests", campaignHandler.HandleSendReviewRequests)

	return app
}

// doJSON gửi request JSON và decode response body
func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp()

	resp, result := doJSON(t, app, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, result["ok"])
}

func TestCreateBusiness_ThieuNameTra400(t *testing.T) {
	app := newTestApp()

	resp, result := doJSON(t, app, "POST", "/api/businesses", map[string]interface{}{
		"email": "test@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, result["error"], "Response lỗi phải có field error")
	assert.Nil(t, result["ok"])

	// Không được persist gì
	count, _ := global.BusinessRepo.CountDocuments(context.Background(), nil)
	assert.Equal(t, int64(0), count)
}

func TestCreatePilotLead(t *testing.T) {
	app := newTestApp()

	resp, result := doJSON(t, app, "POST", "/api/pilot", map[string]interface{}{
		"name":         "Chị Hoa",
		"businessName": "Tiệm bánh Hoa",
		"phone":        "+84901000001",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, result["ok"])
	assert.NotEmpty(t, result["leadId"])
}

func TestImportCustomers_DanhSachRongTra400(t *testing.T) {
	app := newTestApp()

	// Tạo business trước
	_, created := doJSON(t, app, "POST", "/api/businesses", map[string]interface{}{"name": "Quán A"})
	business := created["business"].(map[string]interface{})
	businessID := business["id"].(string)

	resp, _ := doJSON(t, app, "POST", "/api/customers/import", map[string]interface{}{
		"businessId": businessID,
		"customers":  []interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	count, _ := global.CustomerRepo.CountDocuments(context.Background(), nil)
	assert.Equal(t, int64(0), count)
}

func TestImportCustomers_BusinessKhongTonTaiTra404(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, "POST", "/api/customers/import", map[string]interface{}{
		"businessId": "64a000000000000000000000",
		"customers":  []interface{}{map[string]interface{}{"name": "An", "phone": "+84901000001"}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFullFlow_TaoBusinessImportGuiCampaignXemSummary(t *testing.T) {
	app := newTestApp()

	// 1. Tạo business
	resp, created := doJSON(t, app, "POST", "/api/businesses", map[string]interface{}{
		"name":       "Quán Phở",
		"reviewLink": "https://g.page/pho",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	business := created["business"].(map[string]interface{})
	businessID := business["id"].(string)

	// 2. Import 3 khách
	resp, imported := doJSON(t, app, "POST", "/api/customers/import", map[string]interface{}{
		"businessId": businessID,
		"customers": []interface{}{
			map[string]interface{}{"name": "An", "phone": "+84901000001"},
			map[string]interface{}{"name": "Bình", "phone": "+84901000002"},
			map[string]interface{}{"name": "Chi", "phone": "+84901000003"},
		},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(3), imported["inserted"])

	// 3. Gửi campaign
	resp, campaign := doJSON(t, app, "POST", "/api/campaigns/"+businessID+"/send-review-requests", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), campaign["requested"])

	// 4. Xem summary
	resp, summary := doJSON(t, app, "GET", "/api/businesses/"+businessID+"/summary", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), summary["total"])
	assert.Equal(t, float64(3), summary["requested"])
	assert.Equal(t, float64(0), summary["reviewed"])
	assert.Equal(t, float64(0), summary["bad"])
}

func TestSummary_BusinessKhongTonTaiTra404(t *testing.T) {
	app := newTestApp()

	resp, result := doJSON(t, app, "GET", "/api/businesses/64a000000000000000000000/summary", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, result["error"])
}
