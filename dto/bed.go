package dto

import "time"

// AddBedRequest là DTO cho request thêm giường
type AddBedRequest struct {
	RoomID            uint   `json:"roomId" binding:"required"`
	BedNo             string `json:"bedNo" binding:"required"`
	Type              uint   `json:"type"`
	Price             int    `json:"price" binding:"required"`
	Deposit           int    `json:"deposit"`
	MaintenanceCharge int    `json:"maintenanceCharge"`
	HasAC             bool   `json:"hasAC"`
	HasBathroom       bool   `json:"hasBathroom"`
	HasLocker         bool   `json:"hasLocker"`
	HasStudyTable     bool   `json:"hasStudyTable"`
	HasWardrobe       bool   `json:"hasWardrobe"`
	Condition         int    `json:"condition"`
}

// BedStatusRequest là DTO cho request đổi trạng thái giường thủ công
type BedStatusRequest struct {
	BedId  uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// BedResponse là DTO cho thông tin giường trả về
type BedResponse struct {
	BedId             uint      `json:"id"`
	RoomID            uint      `json:"roomId"`
	BedNo             string    `json:"bedNo"`
	Type              uint      `json:"type"`
	Price             int       `json:"price"`
	Deposit           int       `json:"deposit"`
	MaintenanceCharge int       `json:"maintenanceCharge"`
	Status            int       `json:"status"`
	HasAC             bool      `json:"hasAC"`
	HasBathroom       bool      `json:"hasBathroom"`
	HasLocker         bool      `json:"hasLocker"`
	HasStudyTable     bool      `json:"hasStudyTable"`
	HasWardrobe       bool      `json:"hasWardrobe"`
	Condition         int       `json:"condition"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
