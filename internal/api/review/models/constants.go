package models

// Tên các collection của domain review
const (
	CollectionBusinesses = "businesses"  // Collection cho doanh nghiệp
	CollectionCustomers  = "customers"   // Collection cho khách hàng
	CollectionPilotLeads = "pilot_leads" // Collection cho pilot leads
)

// Trạng thái vòng đời review của khách hàng.
// pending -> requested là bước chuyển duy nhất do hệ thống thực hiện;
// reviewed và bad_experience được cập nhật từ phản hồi của khách.
const (
	CustomerStatusPending       = "pending"        // Chưa gửi review request
	CustomerStatusRequested     = "requested"      // Đã gửi review request
	CustomerStatusReviewed      = "reviewed"       // Khách đã để lại review
	CustomerStatusBadExperience = "bad_experience" // Khách báo trải nghiệm xấu
)
