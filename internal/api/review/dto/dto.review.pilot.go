// Package dto - DTO cho domain review (pilot lead).
package dto

// PilotLeadCreateInput dữ liệu đăng ký pilot.
type PilotLeadCreateInput struct {
	Name         string `json:"name" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	BusinessType string `json:"businessType,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
