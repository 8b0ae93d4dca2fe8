package reviewhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "review_hub/internal/api/base/handler"
	reviewsvc "review_hub/internal/api/review/service"
	"review_hub/internal/common"
	"review_hub/internal/global"
)

// CampaignHandler xử lý gửi review request hàng loạt.
type CampaignHandler struct {
	CampaignService *reviewsvc.CampaignService
}

// NewCampaignHandler tạo CampaignHandler mới từ các biến toàn cục.
func NewCampaignHandler() *CampaignHandler {
	cfg := global.ServerConfig
	return &CampaignHandler{
		CampaignService: reviewsvc.NewCampaignService(
			global.BusinessRepo,
			global.CustomerRepo,
			global.WhatsAppSender,
			cfg.WhatsApp_TemplateName,
			cfg.WhatsApp_TemplateLang,
		),
	}
}

// HandleSendReviewRequests xử lý POST /api/campaigns/:businessId/send-review-requests.
func (h *CampaignHandler) HandleSendReviewRequests(c fiber.Ctx) error {
	businessID, err := parseIDParam(c, "businessId")
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	result, err := h.CampaignService.SendReviewRequests(c.Context(), businessID)
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	return basehdl.RespondOK(c, common.StatusOK, fiber.Map{
		"requested": result.Requested,
		"message":   result.Message,
	})
}
