package global

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"review_hub/internal/common"
)

// InitValidator khởi tạo validator instance
func InitValidator() {
	Validate = validator.New()
}

// ValidateStruct xác thực struct theo các validate tag và trả về *common.Error
// với thông báo dễ đọc cho field đầu tiên bị lỗi.
func ValidateStruct(data interface{}) error {
	if Validate == nil {
		InitValidator()
	}

	err := Validate.Struct(data)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return common.ErrInvalidInput
	}

	// Chỉ báo lỗi đầu tiên để message gọn
	fieldErr := validationErrors[0]
	return common.NewError(
		common.ErrCodeValidationInput,
		validationMessage(fieldErr),
		common.StatusBadRequest,
		nil,
	)
}

// validationMessage tạo thông báo lỗi theo tag của field
func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Thiếu trường bắt buộc: %s", field)
	case "email":
		return fmt.Sprintf("Trường %s không phải là email hợp lệ", field)
	case "min":
		return fmt.Sprintf("Trường %s phải có tối thiểu %s phần tử/ký tự", field, fe.Param())
	case "max":
		return fmt.Sprintf("Trường %s vượt quá giới hạn %s", field, fe.Param())
	default:
		return fmt.Sprintf("Trường %s không hợp lệ", field)
	}
}
