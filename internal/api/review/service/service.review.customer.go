package reviewsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "review_hub/internal/api/base/models"
	basesvc "review_hub/internal/api/base/service"
	reviewdto "review_hub/internal/api/review/dto"
	reviewmodels "review_hub/internal/api/review/models"
	"review_hub/internal/common"
	"review_hub/internal/utility"
)

// CustomerService xử lý import và truy vấn khách hàng.
type CustomerService struct {
	repo         basesvc.Repository[reviewmodels.Customer]
	businessRepo basesvc.Repository[reviewmodels.Business]
}

// NewCustomerService tạo CustomerService mới với các repository được inject.
func NewCustomerService(repo basesvc.Repository[reviewmodels.Customer], businessRepo basesvc.Repository[reviewmodels.Business]) *CustomerService {
	return &CustomerService{
		repo:         repo,
		businessRepo: businessRepo,
	}
}

// ImportCustomers import danh sách khách hàng cho một doanh nghiệp.
// Tất cả customer được tạo với status pending. Trả về số bản ghi đã insert.
func (s *CustomerService) ImportCustomers(ctx context.Context, input *reviewdto.CustomerImportInput) (int, error) {
	businessID, err := utility.String2ObjectID(input.BusinessID)
	if err != nil {
		return 0, common.NewError(
			common.ErrCodeValidationFormat,
			"businessId không phải là id hợp lệ",
			common.StatusBadRequest,
			nil,
		)
	}

	// Kiểm tra doanh nghiệp tồn tại, không có thì trả 404
	if _, err := s.businessRepo.FindOneById(ctx, businessID); err != nil {
		return 0, err
	}

	docs := make([]reviewmodels.Customer, 0, len(input.Customers))
	for _, item := range input.Customers {
		docs = append(docs, reviewmodels.Customer{
			BusinessID:    businessID,
			Name:          item.Name,
			Phone:         item.Phone,
			LastVisitDate: item.LastVisitDate,
			Status:        reviewmodels.CustomerStatusPending,
		})
	}

	created, err := s.repo.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}

	return len(created), nil
}

// FindByBusiness trả về danh sách khách hàng của doanh nghiệp, có phân trang.
// status rỗng = mọi trạng thái.
func (s *CustomerService) FindByBusiness(ctx context.Context, businessID primitive.ObjectID, status string, page, limit int64) (*basemodels.PaginateResult[reviewmodels.Customer], error) {
	// Kiểm tra doanh nghiệp tồn tại, không có thì trả 404
	if _, err := s.businessRepo.FindOneById(ctx, businessID); err != nil {
		return nil, err
	}

	filter := map[string]interface{}{
		"businessId": businessID,
	}
	if status != "" {
		filter["status"] = status
	}

	return s.repo.FindWithPagination(ctx, filter, page, limit)
}
