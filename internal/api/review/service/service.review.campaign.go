package reviewsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "review_hub/internal/api/base/service"
	reviewmodels "review_hub/internal/api/review/models"
	"review_hub/internal/delivery/channels"
	"review_hub/internal/logger"
)

const (
	// maxCampaignBatch giới hạn số customer xử lý trong một lần gọi campaign
	maxCampaignBatch = 200

	// defaultReviewLink dùng khi doanh nghiệp chưa cấu hình reviewLink
	defaultReviewLink = "https://example.com/review"

	// defaultCustomerName dùng trong template khi customer không có tên
	defaultCustomerName = "Quý khách"
)

// CampaignResult kết quả của một lần chạy campaign.
type CampaignResult struct {
	Requested int    `json:"requested"` // Số customer đã xử lý (chuyển sang requested)
	Message   string `json:"message"`
}

// CampaignService gửi review request hàng loạt cho khách hàng pending.
type CampaignService struct {
	businessRepo basesvc.Repository[reviewmodels.Business]
	customerRepo basesvc.Repository[reviewmodels.Customer]
	sender       channels.TemplateSender
	templateName string
	templateLang string
}

// NewCampaignService tạo CampaignService mới.
func NewCampaignService(
	businessRepo basesvc.Repository[reviewmodels.Business],
	customerRepo basesvc.Repository[reviewmodels.Customer],
	sender channels.TemplateSender,
	templateName string,
	templateLang string,
) *CampaignService {
	return &CampaignService{
		businessRepo: businessRepo,
		customerRepo: customerRepo,
		sender:       sender,
		templateName: templateName,
		templateLang: templateLang,
	}
}

// SendReviewRequests gửi review request cho tối đa maxCampaignBatch khách hàng
// pending của doanh nghiệp, tuần tự từng người.
//
// Customer không có số điện thoại bị bỏ qua (không đánh dấu, không đếm).
// Sau mỗi lần gọi send, thành công hay thất bại, customer đều được chuyển
// sang requested kèm reviewRequestSentAt. Gửi là best-effort: lỗi provider
// chỉ được log, trạng thái vẫn chuyển để không spam lại khách ở lần chạy sau.
func (s *CampaignService) SendReviewRequests(ctx context.Context, businessID primitive.ObjectID) (*CampaignResult, error) {
	log := logger.GetAppLogger()

	// Doanh nghiệp không tồn tại thì trả 404
	business, err := s.businessRepo.FindOneById(ctx, businessID)
	if err != nil {
		return nil, err
	}

	// Lấy tối đa maxCampaignBatch customer pending của doanh nghiệp
	pending, err := s.customerRepo.Find(ctx, map[string]interface{}{
		"businessId": businessID,
		"status":     reviewmodels.CustomerStatusPending,
	}, maxCampaignBatch)
	if err != nil {
		return nil, err
	}

	reviewLink := business.ReviewLink
	if reviewLink == "" {
		reviewLink = defaultReviewLink
	}

	requested := 0
	for _, customer := range pending {
		if customer.Phone == "" {
			log.WithField("customerId", customer.ID.Hex()).Debug("Bỏ qua customer không có số điện thoại")
			continue
		}

		customerName := customer.Name
		if customerName == "" {
			customerName = defaultCustomerName
		}

		// Tham số template theo thứ tự: tên khách, tên doanh nghiệp, link review
		if err := s.sender.SendTemplate(ctx, customer.Phone, s.templateName, s.templateLang, []string{customerName, business.Name, reviewLink}); err != nil {
			log.WithError(err).WithField("customerId", customer.ID.Hex()).Warn("Gửi review request thất bại, vẫn chuyển trạng thái")
		}

		if _, err := s.customerRepo.UpdateById(ctx, customer.ID, map[string]interface{}{
			"status":              reviewmodels.CustomerStatusRequested,
			"reviewRequestSentAt": time.Now().UnixMilli(),
		}); err != nil {
			log.WithError(err).WithField("customerId", customer.ID.Hex()).Error("Cập nhật trạng thái customer thất bại")
			continue
		}

		requested++
	}

	log.WithFields(map[string]interface{}{
		"businessId": businessID.Hex(),
		"requested":  requested,
	}).Info("Campaign gửi review request hoàn tất")

	return &CampaignResult{
		Requested: requested,
		Message:   "Đã gửi review request (best-effort), một số tin nhắn có thể không tới nơi",
	}, nil
}
