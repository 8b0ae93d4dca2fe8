// Package reviewsvc - Test vòng đời campaign và thống kê trên repository in-memory.
package reviewsvc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "review_hub/internal/api/base/service"
	reviewdto "review_hub/internal/api/review/dto"
	reviewmodels "review_hub/internal/api/review/models"
	"review_hub/internal/common"
)

// fakeSender ghi lại các lần gọi SendTemplate, có thể giả lập lỗi provider.
type fakeSender struct {
	calls []fakeSendCall
	err   error
}

type fakeSendCall struct {
	To         string
	Template   string
	Lang       string
	BodyParams []string
}

func (f *fakeSender) SendTemplate(ctx context.Context, to, templateName, langCode string, bodyParams []string) error {
	f.calls = append(f.calls, fakeSendCall{To: to, Template: templateName, Lang: langCode, BodyParams: bodyParams})
	return f.err
}

// newCampaignFixture tạo business + customer repos in-memory và campaign service với fake sender.
func newCampaignFixture() (*CampaignService, basesvc.Repository[reviewmodels.Business], basesvc.Repository[reviewmodels.Customer], *fakeSender) {
	businessRepo := basesvc.NewMemoryRepository[reviewmodels.Business]()
	customerRepo := basesvc.NewMemoryRepository[reviewmodels.Customer]()
	sender := &fakeSender{}
	svc := NewCampaignService(businessRepo, customerRepo, sender, "review_request", "en")
	return svc, businessRepo, customerRepo, sender
}

func TestSendReviewRequests_ChuyenPendingSangRequested(t *testing.T) {
	svc, businessRepo, customerRepo, sender := newCampaignFixture()
	ctx := context.Background()

	business, _ := businessRepo.InsertOne(ctx, reviewmodels.Business{Name: "Quán Phở", ReviewLink: "https://g.page/pho"})
	customerRepo.InsertMany(ctx, []reviewmodels.Customer{
		{BusinessID: business.ID, Name: "An", Phone: "+84901000001", Status: reviewmodels.CustomerStatusPending},
		{BusinessID: business.ID, Name: "Bình", Phone: "+84901000002", Status: reviewmodels.CustomerStatusPending},
		{BusinessID: business.ID, Name: "Chi", Phone: "+84901000003", Status: reviewmodels.CustomerStatusPending},
	})

	result, err := svc.SendReviewRequests(ctx, business.ID)
	if err != nil {
		t.Fatalf("SendReviewRequests lỗi: %v", err)
	}
	if result.Requested != 3 {
		t.Errorf("Requested phải là 3, có %d", result.Requested)
	}
	if len(sender.calls) != 3 {
		t.Errorf("Phải gọi SendTemplate 3 lần, có %d", len(sender.calls))
	}

	// Tất cả customer phải chuyển sang requested kèm timestamp
	requested, _ := customerRepo.Find(ctx, map[string]interface{}{"status": reviewmodels.CustomerStatusRequested}, 0)
	if len(requested) != 3 {
		t.Fatalf("Phải có 3 customer requested, có %d", len(requested))
	}
	for _, c := range requested {
		if c.ReviewRequestSentAt == 0 {
			t.Errorf("Customer %s thiếu reviewRequestSentAt", c.Name)
		}
	}

	// Tham số template theo thứ tự: tên khách, tên doanh nghiệp, link review
	call := sender.calls[0]
	if len(call.BodyParams) != 3 {
		t.Fatalf("BodyParams phải có 3 phần tử, có %d", len(call.BodyParams))
	}
	if call.BodyParams[1] != "Quán Phở" {
		t.Errorf("Tham số thứ 2 phải là tên doanh nghiệp, có %s", call.BodyParams[1])
	}
	if call.BodyParams[2] != "https://g.page/pho" {
		t.Errorf("Tham số thứ 3 phải là review link, có %s", call.BodyParams[2])
	}
}

func TestSendReviewRequests_LanHaiKhongGuiLai(t *testing.T) {
	svc, businessRepo, customerRepo, sender := newCampaignFixture()
	ctx := context.Background()

	business, _ := businessRepo.InsertOne(ctx, reviewmodels.Business{Name: "Salon"})
	customerRepo.InsertOne(ctx, reviewmodels.Customer{BusinessID: business.ID, Name: "An", Phone: "+84901000001", Status: reviewmodels.CustomerStatusPending})

	first, _ := svc.SendReviewRequests(ctx, business.ID)
	if first.Requested != 1 {
		t.Fatalf("Lần 1 phải xử lý 1 customer, có %d", first.Requested)
	}

	second, err := svc.SendReviewRequests(ctx, business.ID)
	if err != nil {
		t.Fatalf("SendReviewRequests lần 2 lỗi: %v", err)
	}
	if second.Requested != 0 {
		t.Errorf("Lần 2 phải xử lý 0 customer, có %d", second.Requested)
	}
	if len(sender.calls) != 1 {
		t.Errorf("Tổng số lần gửi phải là 1, có %d", len(sender.calls))
	}
}

func TestSendReviewRequests_KhongCoPendingLaNoOp(t *testing.T) {
	svc, businessRepo, _, sender := newCampaignFixture()
	ctx := context.Background()

	business, _ := businessRepo.InsertOne(ctx, reviewmodels.Business{Name: "Tiệm bánh"})

	result, err := svc.SendReviewRequests(ctx, business.ID)
	if err != nil {
		t.Fatalf("SendReviewRequests lỗi: %v", err)
	}
	if result.Requested != 0 {
		t.Errorf("Requested phải là 0, có %d", result.Requested)
	}
	if len(sender.calls) != 0 {
		t.Errorf("Không được gọi SendTemplate, có %d lần", len(sender.calls))
	}
}

func TestSendReviewRequests_BoQuaCustomerKhongCoPhone(t *testing.T) {
	svc, businessRepo, customerRepo, sender := newCampaignFixture()
	ctx := context.Background()

	business, _ := businessRepo.InsertOne(ctx, reviewmodels.Business{Name: "Nhà hàng"})
	customerRepo.InsertMany(ctx, []reviewmodels.Customer{
		{BusinessID: business.ID, Name: "Có phone", Phone: "+84901000001", Status: reviewmodels.CustomerStatusPending},
		{BusinessID: business.ID, Name: "Không phone", Status: reviewmodels.CustomerStatusPending},
	})

	result, _ := svc.SendReviewRequests(ctx, business.ID)
	if result.Requested != 1 {
		t.Errorf("Chỉ customer có phone được xử lý, requested phải là 1, có %d", result.Requested)
	}
	if len(sender.calls) != 1 {
		t.Errorf("Phải gọi SendTemplate 1 lần, có %d", len(sender.calls))
	}

	// Customer không phone phải giữ nguyên pending
	stillPending, _ := customerRepo.Find(ctx, map[string]interface{}{"status": reviewmodels.CustomerStatusPending}, 0)
	if len(stillPending) != 1 || stillPending[0].Name != "Không phone" {
		t.Error("Customer không phone phải giữ trạng thái pending")
	}
}

func TestSendReviewRequests_LoiProviderVanChuyenTrangThai(t *testing.T) {
	svc, businessRepo, customerRepo, sender := newCampaignFixture()
	sender.err = errors.New("provider xuống")
	ctx := context.Background()

	business, _ := businessRepo.InsertOne(ctx, reviewmodels.Business{Name: "Spa"})
	customerRepo.InsertOne(ctx, reviewmodels.Customer{BusinessID: business.ID, Name: "An", Phone: "+84901000001", Status: reviewmodels.CustomerStatusPending})

	result, err := svc.SendReviewRequests(ctx, business.ID)
	if err != nil {
		t.Fatalf("Lỗi provider không được propagate: %v", err)
	}
	if result.Requested != 1 {
		t.Errorf("Requested phải là 1 kể cả khi gửi lỗi, có %d", result.Requested)
	}
}

func TestSendReviewRequests_BusinessKhongTonTai(t *testing.T) {
	svc, _, _, _ := newCampaignFixture()
	ctx := context.Background()

	_, err := svc.SendReviewRequests(ctx, primitive.NewObjectID())
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Business lạ phải trả ErrNotFound, có %v", err)
	}
}

func TestSendReviewRequests_DungLinkMacDinhKhiThieuReviewLink(t *testing.T) {
	svc, businessRepo, customerRepo, sender := newCampaignFixture()
	ctx := context.Background()

	business, _ := businessRepo.InsertOne(ctx, reviewmodels.Business{Name: "Quán cà phê"})
	customerRepo.InsertOne(ctx, reviewmodels.Customer{BusinessID: business.ID, Phone: "+84901000001", Status: reviewmodels.CustomerStatusPending})

	svc.SendReviewRequests(ctx, business.ID)
	if len(sender.calls) != 1 {
		t.Fatalf("Phải gọi SendTemplate 1 lần, có %d", len(sender.calls))
	}
	if sender.calls[0].BodyParams[2] != defaultReviewLink {
		t.Errorf("Thiếu reviewLink phải dùng link mặc định, có %s", sender.calls[0].BodyParams[2])
	}
	// Customer không tên phải dùng tên mặc định trong template
	if sender.calls[0].BodyParams[0] != defaultCustomerName {
		t.Errorf("Customer không tên phải dùng tên mặc định, có %s", sender.calls[0].BodyParams[0])
	}
}

func TestSendReviewRequests_MotDotToiDa200Customer(t *testing.T) {
	svc, businessRepo, customerRepo, sender := newCampaignFixture()
	ctx := context.Background()

	business, _ := businessRepo.InsertOne(ctx, reviewmodels.Business{Name: "Chuỗi nhà hàng"})

	docs := make([]reviewmodels.Customer, 0, 205)
	for i := 0; i < 205; i++ {
		docs = append(docs, reviewmodels.Customer{
			BusinessID: business.ID,
			Name:       fmt.Sprintf("Khách %d", i),
			Phone:      fmt.Sprintf("+8490%07d", i),
			Status:     reviewmodels.CustomerStatusPending,
		})
	}
	if _, err := customerRepo.InsertMany(ctx, docs); err != nil {
		t.Fatalf("InsertMany lỗi: %v", err)
	}

	result, err := svc.SendReviewRequests(ctx, business.ID)
	if err != nil {
		t.Fatalf("SendReviewRequests lỗi: %v", err)
	}
	if result.Requested != maxCampaignBatch {
		t.Errorf("Một đợt chỉ xử lý tối đa %d customer, có %d", maxCampaignBatch, result.Requested)
	}
	if len(sender.calls) != maxCampaignBatch {
		t.Errorf("Phải gọi SendTemplate %d lần, có %d", maxCampaignBatch, len(sender.calls))
	}

	requested, _ := customerRepo.CountDocuments(ctx, map[string]interface{}{"status": reviewmodels.CustomerStatusRequested})
	if requested != int64(maxCampaignBatch) {
		t.Errorf("Phải có %d customer requested, có %d", maxCampaignBatch, requested)
	}
	pending, _ := customerRepo.CountDocuments(ctx, map[string]interface{}{"status": reviewmodels.CustomerStatusPending})
	if pending != 5 {
		t.Errorf("Phần còn lại phải giữ pending, muốn 5, có %d", pending)
	}

	// Đợt kế tiếp xử lý nốt phần còn lại
	next, err := svc.SendReviewRequests(ctx, business.ID)
	if err != nil {
		t.Fatalf("SendReviewRequests đợt 2 lỗi: %v", err)
	}
	if next.Requested != 5 {
		t.Errorf("Đợt 2 phải xử lý 5 customer còn lại, có %d", next.Requested)
	}
}

func TestSummary_SauImportVaCampaign(t *testing.T) {
	businessRepo := basesvc.NewMemoryRepository[reviewmodels.Business]()
	customerRepo := basesvc.NewMemoryRepository[reviewmodels.Customer]()
	sender := &fakeSender{}

	businessSvc := NewBusinessService(businessRepo, customerRepo)
	customerSvc := NewCustomerService(customerRepo, businessRepo)
	campaignSvc := NewCampaignService(businessRepo, customerRepo, sender, "review_request", "en")
	ctx := context.Background()

	business, _ := businessSvc.CreateBusiness(ctx, &reviewdto.BusinessCreateInput{Name: "Tiệm tóc"})

	// Import 5 khách, 3 khách có phone
	inserted, err := customerSvc.ImportCustomers(ctx, &reviewdto.CustomerImportInput{
		BusinessID: business.ID.Hex(),
		Customers: []reviewdto.CustomerImportItem{
			{Name: "1", Phone: "+84901000001"},
			{Name: "2", Phone: "+84901000002"},
			{Name: "3", Phone: "+84901000003"},
			{Name: "4"},
			{Name: "5"},
		},
	})
	if err != nil {
		t.Fatalf("ImportCustomers lỗi: %v", err)
	}
	if inserted != 5 {
		t.Fatalf("Phải insert 5 customer, có %d", inserted)
	}

	result, _ := campaignSvc.SendReviewRequests(ctx, business.ID)
	if result.Requested != 3 {
		t.Fatalf("Campaign phải xử lý 3 customer có phone, có %d", result.Requested)
	}

	summary, err := businessSvc.Summary(ctx, business.ID)
	if err != nil {
		t.Fatalf("Summary lỗi: %v", err)
	}
	if summary.Total != 5 {
		t.Errorf("Total phải là 5, có %d", summary.Total)
	}
	if summary.Requested != 3 {
		t.Errorf("Requested phải là 3, có %d", summary.Requested)
	}
	if summary.Reviewed != 0 || summary.Bad != 0 {
		t.Errorf("Reviewed/Bad phải là 0, có %d/%d", summary.Reviewed, summary.Bad)
	}
}
