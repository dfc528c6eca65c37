package models

import "time"

// Property là một khu trọ thuộc về chủ trọ, chứa nhiều phòng
type Property struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"index" json:"ownerId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Owner     User      `json:"owner" gorm:"foreignKey:OwnerID"`
	Rooms     []Room    `json:"rooms,omitempty" gorm:"foreignKey:PropertyID"`
}
