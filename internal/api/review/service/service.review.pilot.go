package reviewsvc

import (
	"context"

	basemodels "review_hub/internal/api/base/models"
	basesvc "review_hub/internal/api/base/service"
	reviewdto "review_hub/internal/api/review/dto"
	reviewmodels "review_hub/internal/api/review/models"
	"review_hub/internal/delivery/channels"
	"review_hub/internal/logger"

	"review_hub/config"
)

// PilotLeadService xử lý đăng ký pilot và gửi xác nhận cho lead.
type PilotLeadService struct {
	repo   basesvc.Repository[reviewmodels.PilotLead]
	sender channels.TemplateSender
	cfg    *config.Configuration
}

// NewPilotLeadService tạo PilotLeadService mới.
// sender có thể là nil khi không cần gửi xác nhận (test).
func NewPilotLeadService(repo basesvc.Repository[reviewmodels.PilotLead], sender channels.TemplateSender, cfg *config.Configuration) *PilotLeadService {
	return &PilotLeadService{
		repo:   repo,
		sender: sender,
		cfg:    cfg,
	}
}

// CreateLead lưu đăng ký pilot mới rồi gửi xác nhận best-effort qua
// WhatsApp template và email (nếu cấu hình SMTP). Lỗi ở bước gửi chỉ
// được log, không làm fail đăng ký.
func (s *PilotLeadService) CreateLead(ctx context.Context, input *reviewdto.PilotLeadCreateInput) (*reviewmodels.PilotLead, error) {
	doc := reviewmodels.PilotLead{
		Name:                input.Name,
		BusinessName:        input.BusinessName,
		Phone:               input.Phone,
		Email:               input.Email,
		BusinessType:        input.BusinessType,
		Notes:               input.Notes,
		ConvertedToBusiness: false,
	}

	lead, err := s.repo.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	// Gửi template chào mừng qua WhatsApp, best-effort
	if s.sender != nil && s.cfg != nil {
		if err := s.sender.SendTemplate(ctx, lead.Phone, s.cfg.Pilot_TemplateName, s.cfg.WhatsApp_TemplateLang, []string{lead.Name, lead.BusinessName}); err != nil {
			logger.GetAppLogger().WithError(err).WithField("leadId", lead.ID.Hex()).Warn("Gửi template xác nhận pilot thất bại")
		}
	}

	// Gửi email xác nhận nếu có SMTP, best-effort
	if s.cfg != nil && lead.Email != "" {
		if err := channels.SendPilotConfirmationEmail(s.cfg, lead.Email, lead.BusinessName); err != nil {
			logger.GetAppLogger().WithError(err).WithField("leadId", lead.ID.Hex()).Warn("Gửi email xác nhận pilot thất bại")
		}
	}

	return &lead, nil
}

// FindWithPagination trả về danh sách pilot leads có phân trang.
func (s *PilotLeadService) FindWithPagination(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[reviewmodels.PilotLead], error) {
	return s.repo.FindWithPagination(ctx, nil, page, limit)
}
