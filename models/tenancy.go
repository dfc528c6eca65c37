package models

import "time"

// Tenancy là bản ghi gắn người thuê với một giường cụ thể.
// RoomID được copy từ giường lúc gán để lịch sử còn lại khi giường bị xóa.
type Tenancy struct {
	TenancyId       uint       `json:"id" gorm:"primaryKey"`
	TenantID        uint       `json:"tenantId" gorm:"index"`
	RoomID          uint       `json:"roomId" gorm:"index"`
	BedID           uint       `json:"bedId" gorm:"index"`
	Status          int        `json:"status" gorm:"default:0"`
	MoveInDate      time.Time  `json:"moveInDate"`
	Price           int        `json:"price"`
	Deposit         int        `json:"deposit"`
	AgreementMonths int        `json:"agreementMonths"`
	NoticeDays      int        `json:"noticeDays" gorm:"default:30"`
	RentDueDay      int        `json:"rentDueDay" gorm:"default:1"`
	TerminatedAt    *time.Time `json:"terminatedAt,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Tenant          User       `json:"tenant" gorm:"foreignKey:TenantID"`
}
