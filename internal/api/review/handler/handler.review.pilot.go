package reviewhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "review_hub/internal/api/base/handler"
	reviewdto "review_hub/internal/api/review/dto"
	reviewsvc "review_hub/internal/api/review/service"
	"review_hub/internal/common"
	"review_hub/internal/global"
)

// PilotLeadHandler xử lý đăng ký pilot.
type PilotLeadHandler struct {
	PilotLeadService *reviewsvc.PilotLeadService
}

// NewPilotLeadHandler tạo PilotLeadHandler mới từ các biến toàn cục.
func NewPilotLeadHandler() *PilotLeadHandler {
	return &PilotLeadHandler{
		PilotLeadService: reviewsvc.NewPilotLeadService(global.PilotLeadRepo, global.WhatsAppSender, global.ServerConfig),
	}
}

// HandleCreatePilotLead xử lý POST /api/pilot.
func (h *PilotLeadHandler) HandleCreatePilotLead(c fiber.Ctx) error {
	var input reviewdto.PilotLeadCreateInput
	if err := c.Bind().Body(&input); err != nil {
		return basehdl.RespondError(c, common.NewError(
			common.ErrCodeValidationFormat,
			"Dữ liệu gửi lên không đúng định dạng JSON",
			common.StatusBadRequest,
			nil,
		))
	}

	if err := global.ValidateStruct(&input); err != nil {
		return basehdl.RespondError(c, err)
	}

	lead, err := h.PilotLeadService.CreateLead(c.Context(), &input)
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	return basehdl.RespondOK(c, common.StatusCreated, fiber.Map{
		"leadId": lead.ID.Hex(),
	})
}

// HandleListPilotLeads xử lý GET /api/pilot.
func (h *PilotLeadHandler) HandleListPilotLeads(c fiber.Ctx) error {
	page, limit := parsePagination(c)

	result, err := h.PilotLeadService.FindWithPagination(c.Context(), page, limit)
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	return basehdl.RespondOK(c, common.StatusOK, fiber.Map{
		"items": result.Items,
		"total": result.Total,
		"page":  result.Page,
		"limit": result.Limit,
	})
}
