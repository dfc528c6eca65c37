package models

import "time"

// DueCategory là định nghĩa khoản thu dùng lại được (vd "Phí bảo trì").
// Loại Fixed luôn có Amount, loại Variable không lưu Amount trên category.
type DueCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"index" json:"ownerId"`
	Name        string    `json:"name"`
	BillingType int       `json:"billingType" gorm:"default:0"`
	Amount      *int      `json:"amount,omitempty"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
