// Package router gom việc đăng ký route của các domain lên app.
package router

import (
	"github.com/gofiber/fiber/v3"

	reviewrouter "review_hub/internal/api/review/router"
)

// SetupRoutes đăng ký tất cả routes của ứng dụng lên group /api.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	reviewrouter.Register(api)
}
