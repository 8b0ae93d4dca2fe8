package basesvc

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "review_hub/internal/api/base/models"
	"review_hub/internal/common"
	"review_hub/internal/utility"
)

// MemoryRepository triển khai Repository trên bộ nhớ, dùng khi không có
// MongoDB (phát triển local, chạy test). Documents được lưu dưới dạng bson.M
// và decode về model qua BSON round-trip để giữ semantics giống MongoDB
// (bson tag, ObjectID, timestamps UnixMilli).
//
// Giới hạn: filter chỉ hỗ trợ so sánh bằng trên top-level field. Đủ cho các
// truy vấn hiện tại; nếu cần $in hay $gt thì bổ sung sau.
// Dữ liệu mất khi restart.
type MemoryRepository[T any] struct {
	mu   sync.RWMutex
	docs []bson.M
}

// NewMemoryRepository tạo mới một MemoryRepository rỗng
func NewMemoryRepository[T any]() *MemoryRepository[T] {
	return &MemoryRepository[T]{
		docs: make([]bson.M, 0),
	}
}

// toDocument chuyển model thành bson.M, gán _id mới nếu chưa có và thêm timestamps
func toDocument[T any](data T) (bson.M, error) {
	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}

	// Loại bỏ các field empty string, giống hành vi của MongoRepository
	for key, value := range dataMap {
		if strValue, ok := value.(string); ok && strValue == "" {
			delete(dataMap, key)
		}
	}

	// Gán _id nếu model chưa có (zero ObjectID cũng coi như chưa có)
	if id, ok := dataMap["_id"].(primitive.ObjectID); !ok || id.IsZero() {
		dataMap["_id"] = primitive.NewObjectID()
	}

	now := time.Now().UnixMilli()
	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now

	return bson.M(dataMap), nil
}

// decodeDocument decode bson.M về model qua BSON round-trip
func decodeDocument[T any](doc bson.M) (T, error) {
	var result T
	raw, err := bson.Marshal(doc)
	if err != nil {
		return result, common.ErrInvalidFormat
	}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return result, common.ErrInvalidFormat
	}
	return result, nil
}

// matchFilter kiểm tra document có match filter không (so sánh bằng trên top-level field)
func matchFilter(doc bson.M, filter map[string]interface{}) bool {
	for key, want := range filter {
		got, exists := doc[key]
		if !exists {
			return false
		}
		// ObjectID so sánh trực tiếp, các kiểu khác so sánh qua chuẩn hóa string/number
		if wantID, ok := want.(primitive.ObjectID); ok {
			gotID, ok := got.(primitive.ObjectID)
			if !ok || gotID != wantID {
				return false
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}

// InsertOne tạo mới một bản ghi trong bộ nhớ
func (s *MemoryRepository[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := toDocument(data)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	s.docs = append(s.docs, doc)
	s.mu.Unlock()

	return decodeDocument[T](doc)
}

// InsertMany tạo nhiều bản ghi trong bộ nhớ
func (s *MemoryRepository[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}

	docs := make([]bson.M, 0, len(data))
	for _, item := range data {
		doc, err := toDocument(item)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	s.mu.Lock()
	s.docs = append(s.docs, docs...)
	s.mu.Unlock()

	created := make([]T, 0, len(docs))
	for _, doc := range docs {
		model, err := decodeDocument[T](doc)
		if err != nil {
			return nil, err
		}
		created = append(created, model)
	}

	return created, nil
}

// FindOne tìm một document theo điều kiện lọc
func (s *MemoryRepository[T]) FindOne(ctx context.Context, filter map[string]interface{}) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.docs {
		if matchFilter(doc, filter) {
			return decodeDocument[T](doc)
		}
	}

	var zero T
	return zero, common.ErrNotFound
}

// Find tìm tất cả bản ghi theo điều kiện lọc. limit <= 0 nghĩa là không giới hạn.
func (s *MemoryRepository[T]) Find(ctx context.Context, filter map[string]interface{}, limit int64) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []T{}
	for _, doc := range s.docs {
		if !matchFilter(doc, filter) {
			continue
		}
		model, err := decodeDocument[T](doc)
		if err != nil {
			return nil, err
		}
		results = append(results, model)
		if limit > 0 && int64(len(results)) >= limit {
			break
		}
	}

	return results, nil
}

// FindOneById tìm một document theo ObjectId
func (s *MemoryRepository[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, map[string]interface{}{"_id": id})
}

// FindWithPagination tìm tất cả bản ghi với phân trang
func (s *MemoryRepository[T]) FindWithPagination(ctx context.Context, filter map[string]interface{}, page, limit int64) (*basemodels.PaginateResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	skip := (page - 1) * limit

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []bson.M
	for _, doc := range s.docs {
		if matchFilter(doc, filter) {
			matched = append(matched, doc)
		}
	}

	total := int64(len(matched))
	items := []T{}
	for i := skip; i < total && int64(len(items)) < limit; i++ {
		model, err := decodeDocument[T](matched[i])
		if err != nil {
			return nil, err
		}
		items = append(items, model)
	}

	var totalPage int64
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}

	return &basemodels.PaginateResult[T]{
		Items:     items,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// UpdateById cập nhật một document theo ObjectId.
// data là map các field cần cập nhật.
func (s *MemoryRepository[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.docs {
		docID, ok := doc["_id"].(primitive.ObjectID)
		if !ok || docID != id {
			continue
		}
		for k, v := range data {
			doc[k] = v
		}
		doc["updatedAt"] = time.Now().UnixMilli()
		return decodeDocument[T](doc)
	}

	var zero T
	return zero, common.ErrNotFound
}

// DeleteById xóa một document theo ObjectId
func (s *MemoryRepository[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, doc := range s.docs {
		docID, ok := doc["_id"].(primitive.ObjectID)
		if ok && docID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}

	return common.ErrNotFound
}

// CountDocuments đếm số lượng document match filter
func (s *MemoryRepository[T]) CountDocuments(ctx context.Context, filter map[string]interface{}) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, doc := range s.docs {
		if matchFilter(doc, filter) {
			count++
		}
	}

	return count, nil
}
