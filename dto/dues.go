package dto

import "time"

// CreateDueCategoryRequest là DTO cho request tạo loại khoản thu
type CreateDueCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	BillingType int    `json:"billingType"`
	Amount      *int   `json:"amount"`
}

// UpdateDueCategoryRequest là DTO cho request cập nhật loại khoản thu
type UpdateDueCategoryRequest struct {
	CategoryId  uint    `json:"id" binding:"required"`
	Name        *string `json:"name"`
	BillingType *int    `json:"billingType"`
	Amount      *int    `json:"amount"`
}

// DueCategoryStatusRequest là DTO cho request bật/tắt loại khoản thu
type DueCategoryStatusRequest struct {
	CategoryId uint `json:"id" binding:"required"`
	Active     bool `json:"active"`
}

// DueCategoryResponse là DTO cho thông tin loại khoản thu trả về
type DueCategoryResponse struct {
	ID          uint      `json:"id"`
	OwnerID     uint      `json:"ownerId"`
	Name        string    `json:"name"`
	BillingType int       `json:"billingType"`
	Amount      *int      `json:"amount,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AssignDueRequest là DTO cho request gán khoản thu
type AssignDueRequest struct {
	CategoryID uint   `json:"categoryId" binding:"required"`
	TenancyID  uint   `json:"tenancyId" binding:"required"`
	Amount     *int   `json:"amount"`
	DueDate    string `json:"dueDate" binding:"required"`
}

// MarkDuePaidRequest là DTO cho request đánh dấu đã thanh toán
type MarkDuePaidRequest struct {
	AssignmentId uint `json:"id" binding:"required"`
}

// DueAssignmentResponse là DTO cho thông tin khoản thu trả về
type DueAssignmentResponse struct {
	ID           uint       `json:"id"`
	CategoryID   uint       `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	TenancyID    uint       `json:"tenancyId"`
	Amount       int        `json:"amount"`
	DueDate      time.Time  `json:"dueDate"`
	Status       int        `json:"status"`
	PaidAt       *time.Time `json:"paidAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
