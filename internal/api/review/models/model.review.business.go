// Package models chứa các model của domain review (businesses, customers, pilot_leads).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Business lưu doanh nghiệp sử dụng dịch vụ review request (businesses).
type Business struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name         string `json:"name" bson:"name"`                                     // Tên doanh nghiệp
	OwnerName    string `json:"ownerName,omitempty" bson:"ownerName,omitempty"`       // Tên chủ doanh nghiệp
	Email        string `json:"email,omitempty" bson:"email,omitempty"`               // Email liên hệ
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`               // Số điện thoại liên hệ
	BusinessType string `json:"businessType,omitempty" bson:"businessType,omitempty"` // Loại hình kinh doanh (nhà hàng, salon...)
	ReviewLink   string `json:"reviewLink,omitempty" bson:"reviewLink,omitempty"`     // Link trang review (Google Maps, v.v.)

	// Pilot program
	PilotActive    bool  `json:"pilotActive" bson:"pilotActive"`                           // Đang trong chương trình pilot
	PilotStartDate int64 `json:"pilotStartDate,omitempty" bson:"pilotStartDate,omitempty"` // Ngày bắt đầu pilot (UnixMilli)
	PilotEndDate   int64 `json:"pilotEndDate,omitempty" bson:"pilotEndDate,omitempty"`     // Ngày kết thúc pilot (UnixMilli)

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Thời gian tạo (UnixMilli)
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Thời gian cập nhật (UnixMilli)
}
