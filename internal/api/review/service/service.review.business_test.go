// Package reviewsvc - Test cập nhật doanh nghiệp trên repository in-memory.
package reviewsvc

import (
	"context"
	"testing"

	basesvc "review_hub/internal/api/base/service"
	reviewdto "review_hub/internal/api/review/dto"
	reviewmodels "review_hub/internal/api/review/models"
)

func newBusinessFixture() (*BusinessService, basesvc.Repository[reviewmodels.Business]) {
	businessRepo := basesvc.NewMemoryRepository[reviewmodels.Business]()
	customerRepo := basesvc.NewMemoryRepository[reviewmodels.Customer]()
	return NewBusinessService(businessRepo, customerRepo), businessRepo
}

func TestUpdateBusiness_ChiGhiDeFieldCoGiaTri(t *testing.T) {
	svc, _ := newBusinessFixture()
	ctx := context.Background()

	business, err := svc.CreateBusiness(ctx, &reviewdto.BusinessCreateInput{
		Name:       "Quán Phở",
		OwnerName:  "Anh Tuấn",
		ReviewLink: "https://g.page/pho",
	})
	if err != nil {
		t.Fatalf("CreateBusiness lỗi: %v", err)
	}

	updated, err := svc.UpdateById(ctx, business.ID, &reviewdto.BusinessUpdateInput{
		Name: "Quán Phở Tuấn",
	})
	if err != nil {
		t.Fatalf("UpdateById lỗi: %v", err)
	}
	if updated.Name != "Quán Phở Tuấn" {
		t.Errorf("Name phải được cập nhật, có %s", updated.Name)
	}

	// Field không có trong input phải giữ nguyên giá trị cũ
	if updated.OwnerName != "Anh Tuấn" {
		t.Errorf("OwnerName phải giữ nguyên, có %s", updated.OwnerName)
	}
	if updated.ReviewLink != "https://g.page/pho" {
		t.Errorf("ReviewLink phải giữ nguyên, có %s", updated.ReviewLink)
	}
}

func TestUpdateBusiness_PilotActiveDungPointerDeSetFalse(t *testing.T) {
	svc, _ := newBusinessFixture()
	ctx := context.Background()

	business, _ := svc.CreateBusiness(ctx, &reviewdto.BusinessCreateInput{
		Name:        "Salon Hoa",
		PilotActive: true,
	})

	// Không truyền pilotActive thì giữ nguyên
	updated, err := svc.UpdateById(ctx, business.ID, &reviewdto.BusinessUpdateInput{
		OwnerName: "Chị Hoa",
	})
	if err != nil {
		t.Fatalf("UpdateById lỗi: %v", err)
	}
	if !updated.PilotActive {
		t.Error("PilotActive phải giữ nguyên true khi input không truyền")
	}

	// Truyền false tường minh thì phải được áp dụng
	inactive := false
	updated, err = svc.UpdateById(ctx, business.ID, &reviewdto.BusinessUpdateInput{
		PilotActive: &inactive,
	})
	if err != nil {
		t.Fatalf("UpdateById lỗi: %v", err)
	}
	if updated.PilotActive {
		t.Error("PilotActive phải được set false khi truyền tường minh")
	}
}
