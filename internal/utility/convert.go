// Package utility chứa các hàm tiện ích dùng chung cho toàn bộ ứng dụng.
package utility

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"review_hub/internal/common"
)

// String2ObjectID chuyển chuỗi hex sang primitive.ObjectID.
// Trả về ErrInvalidFormat nếu chuỗi không phải là ObjectID hợp lệ.
func String2ObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidFormat
	}
	return objectID, nil
}

// ObjectID2String chuyển primitive.ObjectID sang chuỗi hex.
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// ToMap chuyển struct sang map[string]interface{} thông qua BSON marshal/unmarshal.
// Dùng khi cần thêm/bớt field động trước khi ghi vào database.
func ToMap(data interface{}) (map[string]interface{}, error) {
	// Nếu data đã là map, return luôn
	if m, ok := data.(map[string]interface{}); ok {
		return m, nil
	}

	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, common.ErrInvalidFormat
	}

	return result, nil
}
