// Package basehdl chứa các helper dùng chung cho tầng handler.
// Mọi response đều theo envelope thống nhất:
//   - Thành công: {"ok": true, ...payload}
//   - Lỗi:       {"error": "thông báo lỗi"}
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"review_hub/internal/common"
	"review_hub/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// RespondOK trả về response thành công với envelope {"ok": true, ...payload}.
// payload có thể là nil nếu không có dữ liệu kèm theo.
func RespondOK(c fiber.Ctx, statusCode int, payload fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	return JSONResponse(c, statusCode, body)
}

// RespondError trả về response lỗi với envelope {"error": message}.
// Nếu err là *common.Error thì dùng StatusCode và Message của nó.
// Lỗi khác chỉ được log phía server, client nhận message chung để không lộ chi tiết nội bộ.
func RespondError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"error": customErr.Message,
		})
	}

	logger.GetErrorLogger().WithError(err).Error("Unhandled error in handler")
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"error": common.MsgInternalError,
	})
}

// SafeHandler bọc handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func SafeHandler(handler func(c fiber.Ctx) error) fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				// Log stack trace để debug
				logger.GetErrorLogger().WithField("panic", fmt.Sprintf("%v", r)).Error("Panic trong handler")
				debug.PrintStack()

				err = RespondError(c, common.NewError(
					common.ErrCodeInternalServer,
					common.MsgInternalError,
					common.StatusInternalServerError,
					nil,
				))
			}
		}()
		return handler(c)
	}
}
