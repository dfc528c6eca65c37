package models

import (
	"time"

	"qltro/constants"
)

// DueAssignment là một khoản thu cụ thể gắn vào một hợp đồng thuê
type DueAssignment struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CategoryID uint        `gorm:"index" json:"categoryId"`
	TenancyID  uint        `gorm:"index" json:"tenancyId"`
	Amount     int         `json:"amount"`
	DueDate    time.Time   `json:"dueDate"`
	Status     int         `json:"status" gorm:"default:0"`
	PaidAt     *time.Time  `json:"paidAt,omitempty"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	Category   DueCategory `json:"category" gorm:"foreignKey:CategoryID"`
}

// IsPaid kiểm tra khoản thu đã thanh toán chưa
func (d *DueAssignment) IsPaid() bool {
	return d.Status == constants.DueStatusPaid
}

// ShouldMarkOverdue kiểm tra khoản thu có cần chuyển sang quá hạn không.
// So theo ngày: khoản đến hạn hôm nay chưa bị tính quá hạn.
func (d *DueAssignment) ShouldMarkOverdue(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Status == constants.DueStatusPending && d.DueDate.Before(today)
}
