// Package dto - DTO cho domain review (business).
package dto

// BusinessCreateInput dữ liệu tạo doanh nghiệp mới. Chỉ name là bắt buộc,
// các field còn lại pass-through vào model.
type BusinessCreateInput struct {
	Name           string `json:"name" validate:"required"`
	OwnerName      string `json:"ownerName,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty"`
	BusinessType   string `json:"businessType,omitempty"`
	ReviewLink     string `json:"reviewLink,omitempty"`
	PilotActive    bool   `json:"pilotActive,omitempty"`
	PilotStartDate int64  `json:"pilotStartDate,omitempty"`
	PilotEndDate   int64  `json:"pilotEndDate,omitempty"`
}

// BusinessUpdateInput dữ liệu cập nhật doanh nghiệp (ghi đè field theo document).
type BusinessUpdateInput struct {
	Name           string `json:"name,omitempty"`
	OwnerName      string `json:"ownerName,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty"`
	BusinessType   string `json:"businessType,omitempty"`
	ReviewLink     string `json:"reviewLink,omitempty"`
	PilotActive    *bool  `json:"pilotActive,omitempty"`
	PilotStartDate int64  `json:"pilotStartDate,omitempty"`
	PilotEndDate   int64  `json:"pilotEndDate,omitempty"`
}

// BusinessSummary thống kê khách hàng của một doanh nghiệp theo trạng thái.
type BusinessSummary struct {
	Total     int64 `json:"total"`
	Requested int64 `json:"requested"`
	Reviewed  int64 `json:"reviewed"`
	Bad       int64 `json:"bad"`
}
