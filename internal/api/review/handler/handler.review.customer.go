package reviewhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "review_hub/internal/api/base/handler"
	reviewdto "review_hub/internal/api/review/dto"
	reviewsvc "review_hub/internal/api/review/service"
	"review_hub/internal/common"
	"review_hub/internal/global"
)

// CustomerHandler xử lý import và truy vấn khách hàng.
type CustomerHandler struct {
	CustomerService *reviewsvc.CustomerService
}

// NewCustomerHandler tạo CustomerHandler mới từ các repository toàn cục.
func NewCustomerHandler() *CustomerHandler {
	return &CustomerHandler{
		CustomerService: reviewsvc.NewCustomerService(global.CustomerRepo, global.BusinessRepo),
	}
}

// HandleImportCustomers xử lý POST /api/customers/import.
func (h *CustomerHandler) HandleImportCustomers(c fiber.Ctx) error {
	var input reviewdto.CustomerImportInput
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

	inserted, err := h.CustomerService.ImportCustomers(c.Context(), &input)
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	return basehdl.RespondOK(c, common.StatusCreated, fiber.Map{
		"inserted": inserted,
	})
}

// HandleListCustomersByBusiness xử lý GET /api/businesses/:id/customers.
func (h *CustomerHandler) HandleListCustomersByBusiness(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	page, limit := parsePagination(c)
	status := c.Query("status")

	result, err := h.CustomerService.FindByBusiness(c.Context(), id, status, page, limit)
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
