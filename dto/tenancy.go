package dto

import "time"

// BindTenantRequest là DTO cho request gán người thuê vào giường
type BindTenantRequest struct {
	TenantID        uint   `json:"tenantId" binding:"required"`
	BedID           uint   `json:"bedId" binding:"required"`
	MoveInDate      string `json:"moveInDate" binding:"required"`
	Price           *int   `json:"price"`
	Deposit         *int   `json:"deposit"`
	AgreementMonths int    `json:"agreementMonths"`
	NoticeDays      int    `json:"noticeDays"`
	RentDueDay      int    `json:"rentDueDay"`
}

// TenancyStatusRequest là DTO cho request chuyển trạng thái hợp đồng
type TenancyStatusRequest struct {
	TenancyId uint `json:"id" binding:"required"`
	Status    int  `json:"status"`
}

// TenancyResponse là DTO cho thông tin hợp đồng thuê trả về
type TenancyResponse struct {
	TenancyId       uint       `json:"id"`
	TenantID        uint       `json:"tenantId"`
	TenantName      string     `json:"tenantName"`
	RoomID          uint       `json:"roomId"`
	BedID           uint       `json:"bedId"`
	Status          int        `json:"status"`
	MoveInDate      time.Time  `json:"moveInDate"`
	Price           int        `json:"price"`
	Deposit         int        `json:"deposit"`
	AgreementMonths int        `json:"agreementMonths"`
	NoticeDays      int        `json:"noticeDays"`
	RentDueDay      int        `json:"rentDueDay"`
	TerminatedAt    *time.Time `json:"terminatedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
