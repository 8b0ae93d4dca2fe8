package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PilotLead lưu đăng ký tham gia chương trình pilot (pilot_leads).
type PilotLead struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name         string `json:"name" bson:"name"`                                     // Tên người đăng ký
	BusinessName string `json:"businessName" bson:"businessName"`                     // Tên doanh nghiệp
	Phone        string `json:"phone" bson:"phone"`                                   // Số điện thoại WhatsApp
	Email        string `json:"email,omitempty" bson:"email,omitempty"`               // Email liên hệ
	BusinessType string `json:"businessType,omitempty" bson:"businessType,omitempty"` // Loại hình kinh doanh
	Notes        string `json:"notes,omitempty" bson:"notes,omitempty"`               // Ghi chú thêm

	// ConvertedToBusiness đánh dấu lead đã chuyển thành business.
	// Hiện chỉ lưu, chưa có flow chuyển đổi tự động.
	ConvertedToBusiness bool `json:"convertedToBusiness" bson:"convertedToBusiness"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Thời gian tạo (UnixMilli)
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Thời gian cập nhật (UnixMilli)
}
