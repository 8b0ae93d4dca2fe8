// Package router đăng ký các route thuộc domain review: pilot, businesses,
// customers, campaigns.
package router

import (
	"github.com/gofiber/fiber/v3"

	basehdl "review_hub/internal/api/base/handler"
	reviewhdl "review_hub/internal/api/review/handler"
)

// Register đăng ký tất cả route review lên group api.
func Register(api fiber.Router) {
	businessHandler := reviewhdl.NewBusinessHandler()
	customerHandler := reviewhdl.NewCustomerHandler()
	pilotHandler := reviewhdl.NewPilotLeadHandler()
	campaignHandler := reviewhdl.NewCampaignHandler()

	// GET /api/health
	api.Get("/health", basehdl.SafeHandler(reviewhdl.HandleHealth))

	// Pilot leads
	api.Post("/pilot", basehdl.SafeHandler(pilotHandler.HandleCreatePilotLead))
	api.Get("/pilot", basehdl.SafeHandler(pilotHandler.HandleListPilotLeads))

	// Businesses
	api.Post("/businesses", basehdl.SafeHandler(businessHandler.HandleCreateBusiness))
	api.Get("/businesses", basehdl.SafeHandler(businessHandler.HandleListBusinesses))
	api.Get("/businesses/:id", basehdl.SafeHandler(businessHandler.HandleGetBusiness))
	api.Put("/businesses/:id", basehdl.SafeHandler(businessHandler.HandleUpdateBusiness))
	api.Get("/businesses/:id/summary", basehdl.SafeHandler(businessHandler.HandleBusinessSummary))
	api.Get("/businesses/:id/customers", basehdl.SafeHandler(customerHandler.HandleListCustomersByBusiness))

	// Customers
	api.Post("/customers/import", basehdl.SafeHandler(customerHandler.HandleImportCustomers))

	// Campaigns
	api.Post("/campaigns/:businessId/send-review-requests", basehdl.SafeHandler(campaignHandler.HandleSendReviewRequests))
}
