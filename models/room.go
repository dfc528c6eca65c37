package models

import (
	"fmt"
	"time"

	"qltro/constants"
)

type Room struct {
	RoomId     uint      `json:"id" gorm:"primaryKey"`
	PropertyID uint      `json:"propertyId" gorm:"index:idx_room_no,unique"`
	RoomNo     string    `json:"roomNo" gorm:"index:idx_room_no,unique"`
	Capacity   int       `json:"capacity"`
	Type       uint      `json:"type"`
	Furnishing uint      `json:"furnishing"`
	BaseRent   *int      `json:"baseRent,omitempty"`
	Active     bool      `json:"active" gorm:"default:true"`
	Override   int       `json:"override" gorm:"default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Parent     Property  `json:"parent" gorm:"foreignKey:PropertyID"`
	Beds       []Bed     `json:"beds,omitempty" gorm:"foreignKey:RoomID"`
}

// ValidateCapacity kiểm tra capacity hợp lệ
func (r *Room) ValidateCapacity() error {
	if r.Capacity <= 0 {
		return fmt.Errorf("invalid capacity: %d, must be positive", r.Capacity)
	}
	return nil
}

// ValidateOverride kiểm tra override hợp lệ
func (r *Room) ValidateOverride() error {
	switch r.Override {
	case constants.RoomOverrideNone, constants.RoomOverrideMaintenance, constants.RoomOverrideBlocked:
		return nil
	}
	return fmt.Errorf("invalid override: %d", r.Override)
}

// BedCount đếm số giường đang thuộc phòng
func (r *Room) BedCount() int {
	return len(r.Beds)
}

// OccupiedCount đếm số giường đang có người ở
func (r *Room) OccupiedCount() int {
	count := 0
	for _, bed := range r.Beds {
		if bed.Status == constants.BedStatusOccupied {
			count++
		}
	}
	return count
}

// DerivedStatus tính trạng thái phòng từ tập giường hiện tại.
// Override của operator (bảo trì/khóa) luôn thắng giá trị tính được.
func (r *Room) DerivedStatus() int {
	if r.Override != constants.RoomOverrideNone {
		return r.Override
	}

	occupied := r.OccupiedCount()
	if occupied == 0 {
		return constants.RoomStatusAvailable
	}
	if occupied == r.BedCount() && r.BedCount() == r.Capacity {
		return constants.RoomStatusFullyOccupied
	}
	return constants.RoomStatusPartiallyOccupied
}

// CanAddBed kiểm tra còn chỗ để thêm giường không
func (r *Room) CanAddBed() bool {
	return r.BedCount() < r.Capacity
}

// CanResize kiểm tra capacity mới có nhỏ hơn số giường hiện tại không
func (r *Room) CanResize(newCapacity int) bool {
	return newCapacity >= r.BedCount()
}
