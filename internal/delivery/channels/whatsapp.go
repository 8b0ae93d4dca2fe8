// Package channels chứa các kênh gửi tin nhắn ra bên ngoài (WhatsApp, email).
package channels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"review_hub/internal/logger"
)

// TemplateSender gửi một template message tới một số điện thoại.
// Campaign service phụ thuộc vào interface này để test không cần gọi API thật.
type TemplateSender interface {
	SendTemplate(ctx context.Context, to string, templateName string, langCode string, bodyParams []string) error
}

// WhatsAppSender gửi template message qua WhatsApp Cloud API (Graph API).
type WhatsAppSender struct {
	AccessToken   string       // Access token của WhatsApp Cloud API
	PhoneNumberID string       // Phone number ID dùng làm sender identity
	BaseURL       string       // Base URL của Graph API, ví dụ https://graph.facebook.com/v18.0
	HTTPClient    *http.Client // Client dùng để gọi API (nil = client mặc định timeout 10s)
}

// NewWhatsAppSender tạo sender mới với cấu hình Cloud API.
func NewWhatsAppSender(accessToken, phoneNumberID, baseURL string) *WhatsAppSender {
	return &WhatsAppSender{
		AccessToken:   accessToken,
		PhoneNumberID: phoneNumberID,
		BaseURL:       baseURL,
		HTTPClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

// waTemplatePayload là body gửi lên endpoint /{phone-number-id}/messages
type waTemplatePayload struct {
	MessagingProduct string     `json:"messaging_product"`
	To               string     `json:"to"`
	Type             string     `json:"type"`
	Template         waTemplate `json:"template"`
}

type waTemplate struct {
	Name       string        `json:"name"`
	Language   waLanguage    `json:"language"`
	Components []waComponent `json:"components,omitempty"`
}

type waLanguage struct {
	Code string `json:"code"`
}

type waComponent struct {
	Type       string        `json:"type"`
	Parameters []waParameter `json:"parameters,omitempty"`
}

type waParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// waSendResponse là phần response cần đọc từ Cloud API
type waSendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// SendTemplate gửi một template message tới số điện thoại to (định dạng E.164).
// bodyParams là các tham số {{1}}, {{2}}... của template body theo đúng thứ tự.
// Khi thiếu credentials, hàm log warning và trả về nil để campaign vẫn chạy được
// ở môi trường chưa cấu hình WhatsApp.
func (s *WhatsAppSender) SendTemplate(ctx context.Context, to string, templateName string, langCode string, bodyParams []string) error {
	log := logger.GetAppLogger()

	if s.AccessToken == "" || s.PhoneNumberID == "" {
		log.WithFields(map[string]interface{}{
			"to":       to,
			"template": templateName,
		}).Warn("📱 [WHATSAPP] Thiếu credentials, bỏ qua gửi message")
		return nil
	}

	log.WithFields(map[string]interface{}{
		"to":       to,
		"template": templateName,
		"lang":     langCode,
	}).Info("📱 [WHATSAPP] Bắt đầu gửi template message")

	url := fmt.Sprintf("%s/%s/messages", s.BaseURL, s.PhoneNumberID)

	payload := waTemplatePayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: waTemplate{
			Name:     templateName,
			Language: waLanguage{Code: langCode},
		},
	}

	if len(bodyParams) > 0 {
		params := make([]waParameter, 0, len(bodyParams))
		for _, p := range bodyParams {
			params = append(params, waParameter{Type: "text", Text: p})
		}
		payload.Template.Components = []waComponent{
			{Type: "body", Parameters: params},
		}
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.AccessToken)

	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"to":  to,
			"url": url,
		}).Error("📱 [WHATSAPP] Lỗi khi gọi WhatsApp Cloud API")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Đọc response body để xem lỗi chi tiết
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.WithFields(map[string]interface{}{
			"to":         to,
			"statusCode": resp.StatusCode,
			"response":   string(bodyBytes),
		}).Error("📱 [WHATSAPP] WhatsApp Cloud API trả về lỗi")
		return fmt.Errorf("whatsapp API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	// Log message id nếu có để trace
	var sendResp waSendResponse
	bodyBytes, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(bodyBytes, &sendResp); err == nil && len(sendResp.Messages) > 0 {
		log.WithFields(map[string]interface{}{
			"to":        to,
			"messageId": sendResp.Messages[0].ID,
		}).Info("📱 [WHATSAPP] Gửi template message thành công")
	} else {
		log.WithField("to", to).Info("📱 [WHATSAPP] Gửi template message thành công")
	}

	return nil
}
