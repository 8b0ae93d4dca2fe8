// Package channels - Test WhatsAppSender với server HTTP giả.
package channels

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendTemplate_ThieuCredentialsBoQua(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	sender := NewWhatsAppSender("", "", server.URL)
	err := sender.SendTemplate(context.Background(), "+84901000001", "review_request", "en", []string{"An"})

	assert.NoError(t, err, "Thiếu credentials phải trả nil, không phải lỗi")
	assert.False(t, called, "Thiếu credentials không được gọi API")
}

func TestSendTemplate_PayloadDungDinhDang(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":[{"id":"wamid.test123"}]}`))
	}))
	defer server.Close()

	sender := NewWhatsAppSender("token-abc", "phone-123", server.URL)
	err := sender.SendTemplate(context.Background(), "+84901000001", "review_request", "en", []string{"An", "Quán Phở", "https://g.page/pho"})

	assert.NoError(t, err)
	assert.Equal(t, "/phone-123/messages", gotPath)
	assert.Equal(t, "Bearer token-abc", gotAuth)

	assert.Equal(t, "whatsapp", gotPayload["messaging_product"])
	assert.Equal(t, "+84901000001", gotPayload["to"])
	assert.Equal(t, "template", gotPayload["type"])

	template := gotPayload["template"].(map[string]interface{})
	assert.Equal(t, "review_request", template["name"])
	language := template["language"].(map[string]interface{})
	assert.Equal(t, "en", language["code"])

	components := template["components"].([]interface{})
	assert.Len(t, components, 1)
	body := components[0].(map[string]interface{})
	assert.Equal(t, "body", body["type"])
	params := body["parameters"].([]interface{})
	assert.Len(t, params, 3)
	first := params[0].(map[string]interface{})
	assert.Equal(t, "text", first["type"])
	assert.Equal(t, "An", first["text"])
}

func TestSendTemplate_ProviderTraLoi(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	}))
	defer server.Close()

	sender := NewWhatsAppSender("bad-token", "phone-123", server.URL)
	err := sender.SendTemplate(context.Background(), "+84901000001", "review_request", "en", nil)

	// Sender trả lỗi, caller (campaign service) quyết định swallow
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSendTemplate_KhongCoBodyParamsKhongGuiComponents(t *testing.T) {
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.Write([]byte(`{"messages":[{"id":"wamid.x"}]}`))
	}))
	defer server.Close()

	sender := NewWhatsAppSender("token", "phone", server.URL)
	err := sender.SendTemplate(context.Background(), "+84901000001", "pilot_welcome", "en", nil)

	assert.NoError(t, err)
	template := gotPayload["template"].(map[string]interface{})
	_, hasComponents := template["components"]
	assert.False(t, hasComponents, "Không có bodyParams thì không gửi components")
}
