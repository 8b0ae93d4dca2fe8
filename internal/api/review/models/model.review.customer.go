package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer lưu khách hàng của một doanh nghiệp (customers).
// Mỗi customer thuộc về đúng một business và mang trạng thái vòng đời review.
type Customer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"` // Doanh nghiệp sở hữu customer này

	Name  string `json:"name,omitempty" bson:"name,omitempty"` // Tên khách hàng
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"` // Số điện thoại (định dạng E.164)

	// Status là trạng thái vòng đời review, xem constants.go.
	// Hệ thống chỉ thực hiện bước chuyển pending -> requested.
	Status string `json:"status" bson:"status"`

	LastVisitDate       int64 `json:"lastVisitDate,omitempty" bson:"lastVisitDate,omitempty"`             // Lần ghé gần nhất (UnixMilli)
	ReviewRequestSentAt int64 `json:"reviewRequestSentAt,omitempty" bson:"reviewRequestSentAt,omitempty"` // Thời điểm gửi review request gần nhất (UnixMilli, 0 = chưa gửi)
	ReviewLinkClickedAt int64 `json:"reviewLinkClickedAt,omitempty" bson:"reviewLinkClickedAt,omitempty"` // Thời điểm khách click link review (UnixMilli)

	NegativeFeedback string `json:"negativeFeedback,omitempty" bson:"negativeFeedback,omitempty"` // Nội dung phản hồi xấu của khách (nếu có)

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Thời gian tạo (UnixMilli)
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Thời gian cập nhật (UnixMilli)
}
