package models

import (
	"fmt"
	"time"

	"qltro/constants"
)

type Bed struct {
	BedId             uint      `json:"id" gorm:"primaryKey"`
	RoomID            uint      `json:"roomId" gorm:"index:idx_bed_no,unique"`
	BedNo             string    `json:"bedNo" gorm:"index:idx_bed_no,unique"`
	Type              uint      `json:"type"`
	Price             int       `json:"price"`
	Deposit           int       `json:"deposit"`
	MaintenanceCharge int       `json:"maintenanceCharge"`
	Status            int       `json:"status" gorm:"default:0"`
	HasAC             bool      `json:"hasAC"`
	HasBathroom       bool      `json:"hasBathroom"`
	HasLocker         bool      `json:"hasLocker"`
	HasStudyTable     bool      `json:"hasStudyTable"`
	HasWardrobe       bool      `json:"hasWardrobe"`
	Condition         int       `json:"condition" gorm:"default:3"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Parent            Room      `json:"parent" gorm:"foreignKey:RoomID"`
	Tenancies         []Tenancy `json:"tenancies,omitempty" gorm:"foreignKey:BedID"`
}

// ValidateStatus kiểm tra status hợp lệ
func (b *Bed) ValidateStatus() error {
	if b.Status < constants.BedStatusAvailable || b.Status > constants.BedStatusBlocked {
		return fmt.Errorf("invalid status: %d, must be between 0 and 3", b.Status)
	}
	return nil
}
