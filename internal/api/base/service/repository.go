// package basesvc cung cấp tầng truy cập dữ liệu với hai chế độ lưu trữ:
// MongoDB (production) và in-memory (phát triển local, chạy test).
// Chế độ được chọn một lần lúc khởi động, các service phía trên không cần biết
// đang chạy chế độ nào.
package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "review_hub/internal/api/base/models"
)

// Repository định nghĩa interface chứa các phương thức cơ bản cho việc truy cập dữ liệu.
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type Repository[Model any] interface {
	// Thao tác Insert
	InsertOne(ctx context.Context, data Model) (Model, error)
	InsertMany(ctx context.Context, data []Model) ([]Model, error)

	// Thao tác Find
	FindOne(ctx context.Context, filter map[string]interface{}) (Model, error)
	Find(ctx context.Context, filter map[string]interface{}, limit int64) ([]Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindWithPagination(ctx context.Context, filter map[string]interface{}, page, limit int64) (*basemodels.PaginateResult[Model], error)

	// Thao tác Update/Delete
	UpdateById(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) (Model, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error

	// Các thao tác khác
	CountDocuments(ctx context.Context, filter map[string]interface{}) (int64, error)
}
