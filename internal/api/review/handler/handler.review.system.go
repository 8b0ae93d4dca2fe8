// Package reviewhdl - Handler cho domain review.
package reviewhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "review_hub/internal/api/base/handler"
	"review_hub/internal/common"
	"review_hub/internal/global"
)

// HandleHealth xử lý GET /api/health.
func HandleHealth(c fiber.Ctx) error {
	return basehdl.RespondOK(c, common.StatusOK, fiber.Map{
		"message": "Server đang chạy",
		"storage": global.StorageMode,
	})
}
