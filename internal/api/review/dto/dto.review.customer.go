// Package dto - DTO cho domain review (customer).
package dto

// CustomerImportItem một khách hàng trong danh sách import.
type CustomerImportItem struct {
	Name          string `json:"name,omitempty"`
	Phone         string `json:"phone" validate:"required"` // Định dạng E.164
	LastVisitDate int64  `json:"lastVisitDate,omitempty"`
}

// CustomerImportInput dữ liệu import danh sách khách hàng cho một doanh nghiệp.
type CustomerImportInput struct {
	BusinessID string               `json:"businessId" validate:"required"`
	Customers  []CustomerImportItem `json:"customers" validate:"required,min=1,dive"`
}
