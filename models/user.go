package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string        `gorm:"default:New User" json:"name"`
	Email       string        `gorm:"unique" json:"email"`
	Password    string        `json:"password"`
	PhoneNumber string        `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Role        int           `gorm:"default:0" json:"role"`
	Status      int           `gorm:"default:1" json:"status"`
	Gender      int           `json:"gender"`
	DateOfBirth string        `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	PropertyIDs pq.Int64Array `json:"property_ids" gorm:"type:integer[]"`
	Tenancies   []Tenancy     `json:"tenancies,omitempty" gorm:"foreignKey:TenantID"`
}
