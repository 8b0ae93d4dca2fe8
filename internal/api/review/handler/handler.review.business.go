package reviewhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "review_hub/internal/api/base/handler"
	reviewdto "review_hub/internal/api/review/dto"
	reviewsvc "review_hub/internal/api/review/service"
	"review_hub/internal/common"
	"review_hub/internal/global"
	"review_hub/internal/utility"
)

// BusinessHandler xử lý CRUD doanh nghiệp và thống kê.
type BusinessHandler struct {
	BusinessService *reviewsvc.BusinessService
}

// NewBusinessHandler tạo BusinessHandler mới từ các repository toàn cục.
func NewBusinessHandler() *BusinessHandler {
	return &BusinessHandler{
		BusinessService: reviewsvc.NewBusinessService(global.BusinessRepo, global.CustomerRepo),
	}
}

// parseIDParam đọc và validate path param id dạng ObjectID
func parseIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := utility.String2ObjectID(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			name+" không phải là id hợp lệ",
			common.StatusBadRequest,
			nil,
		)
	}
	return id, nil
}

// parsePagination đọc query params page/limit với default hợp lý
func parsePagination(c fiber.Ctx) (page, limit int64) {
	page, limit = 1, 20
	if s := c.Query("page"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			page = n
		}
	}
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	return page, limit
}

// HandleCreateBusiness xử lý POST /api/businesses.
func (h *BusinessHandler) HandleCreateBusiness(c fiber.Ctx) error {
	var input reviewdto.BusinessCreateInput
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

	business, err := h.BusinessService.CreateBusiness(c.Context(), &input)
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	return basehdl.RespondOK(c, common.StatusCreated, fiber.Map{
		"business": business,
	})
}

// HandleGetBusiness xử lý GET /api/businesses/:id.
func (h *BusinessHandler) HandleGetBusiness(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	business, err := h.BusinessService.FindById(c.Context(), id)
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	return basehdl.RespondOK(c, common.StatusOK, fiber.Map{
		"business": business,
	})
}

// HandleListBusinesses xử lý GET /api/businesses.
func (h *BusinessHandler) HandleListBusinesses(c fiber.Ctx) error {
	page, limit := parsePagination(c)

	result, err := h.BusinessService.FindWithPagination(c.Context(), page, limit)
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

// HandleUpdateBusiness xử lý PUT /api/businesses/:id.
func (h *BusinessHandler) HandleUpdateBusiness(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	var input reviewdto.BusinessUpdateInput
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

	business, err := h.BusinessService.UpdateById(c.Context(), id, &input)
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	return basehdl.RespondOK(c, common.StatusOK, fiber.Map{
		"business": business,
	})
}

// HandleBusinessSummary xử lý GET /api/businesses/:id/summary.
func (h *BusinessHandler) HandleBusinessSummary(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	summary, err := h.BusinessService.Summary(c.Context(), id)
	if err != nil {
		return basehdl.RespondError(c, err)
	}

	return basehdl.RespondOK(c, common.StatusOK, fiber.Map{
		"total":     summary.Total,
		"requested": summary.Requested,
		"reviewed":  summary.Reviewed,
		"bad":       summary.Bad,
	})
}
