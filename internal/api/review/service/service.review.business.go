// Package reviewsvc - Service cho domain review (businesses, customers, pilot leads, campaigns).
package reviewsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "review_hub/internal/api/base/models"
	basesvc "review_hub/internal/api/base/service"
	reviewdto "review_hub/internal/api/review/dto"
	reviewmodels "review_hub/internal/api/review/models"
)

// BusinessService xử lý CRUD doanh nghiệp và thống kê khách hàng.
type BusinessService struct {
	repo         basesvc.Repository[reviewmodels.Business]
	customerRepo basesvc.Repository[reviewmodels.Customer]
}

// NewBusinessService tạo BusinessService mới với các repository được inject.
func NewBusinessService(repo basesvc.Repository[reviewmodels.Business], customerRepo basesvc.Repository[reviewmodels.Customer]) *BusinessService {
	return &BusinessService{
		repo:         repo,
		customerRepo: customerRepo,
	}
}

// CreateBusiness tạo doanh nghiệp mới từ input đã validate.
func (s *BusinessService) CreateBusiness(ctx context.Context, input *reviewdto.BusinessCreateInput) (*reviewmodels.Business, error) {
	doc := reviewmodels.Business{
		Name:           input.Name,
		OwnerName:      input.OwnerName,
		Email:          input.Email,
		Phone:          input.Phone,
		BusinessType:   input.BusinessType,
		ReviewLink:     input.ReviewLink,
		PilotActive:    input.PilotActive,
		PilotStartDate: input.PilotStartDate,
		PilotEndDate:   input.PilotEndDate,
	}

	business, err := s.repo.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// FindById trả về doanh nghiệp theo id.
func (s *BusinessService) FindById(ctx context.Context, id primitive.ObjectID) (*reviewmodels.Business, error) {
	business, err := s.repo.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// FindWithPagination trả về danh sách doanh nghiệp có phân trang.
func (s *BusinessService) FindWithPagination(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[reviewmodels.Business], error) {
	return s.repo.FindWithPagination(ctx, nil, page, limit)
}

// UpdateById cập nhật các field của doanh nghiệp (chỉ field có giá trị trong input).
func (s *BusinessService) UpdateById(ctx context.Context, id primitive.ObjectID, input *reviewdto.BusinessUpdateInput) (*reviewmodels.Business, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.OwnerName != "" {
		set["ownerName"] = input.OwnerName
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if input.BusinessType != "" {
		set["businessType"] = input.BusinessType
	}
	if input.ReviewLink != "" {
		set["reviewLink"] = input.ReviewLink
	}
	if input.PilotActive != nil {
		set["pilotActive"] = *input.PilotActive
	}
	if input.PilotStartDate != 0 {
		set["pilotStartDate"] = input.PilotStartDate
	}
	if input.PilotEndDate != 0 {
		set["pilotEndDate"] = input.PilotEndDate
	}

	business, err := s.repo.UpdateById(ctx, id, set)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// Summary đếm khách hàng của doanh nghiệp theo trạng thái.
// Các count được tính lại mỗi request, không cache.
func (s *BusinessService) Summary(ctx context.Context, businessID primitive.ObjectID) (*reviewdto.BusinessSummary, error) {
	// Kiểm tra doanh nghiệp tồn tại trước, không có thì trả 404
	if _, err := s.repo.FindOneById(ctx, businessID); err != nil {
		return nil, err
	}

	total, err := s.customerRepo.CountDocuments(ctx, map[string]interface{}{
		"businessId": businessID,
	})
	if err != nil {
		return nil, err
	}

	requested, err := s.customerRepo.CountDocuments(ctx, map[string]interface{}{
		"businessId": businessID,
		"status":     reviewmodels.CustomerStatusRequested,
	})
	if err != nil {
		return nil, err
	}

	reviewed, err := s.customerRepo.CountDocuments(ctx, map[string]interface{}{
		"businessId": businessID,
		"status":     reviewmodels.CustomerStatusReviewed,
	})
	if err != nil {
		return nil, err
	}

	bad, err := s.customerRepo.CountDocuments(ctx, map[string]interface{}{
		"businessId": businessID,
		"status":     reviewmodels.CustomerStatusBadExperience,
	})
	if err != nil {
		return nil, err
	}

	return &reviewdto.BusinessSummary{
		Total:     total,
		Requested: requested,
		Reviewed:  reviewed,
		Bad:       bad,
	}, nil
}
