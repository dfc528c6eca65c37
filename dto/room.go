package dto

import "time"

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	PropertyID uint   `json:"propertyId" binding:"required"`
	RoomNo     string `json:"roomNo" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required"`
	Type       uint   `json:"type"`
	Furnishing uint   `json:"furnishing"`
	BaseRent   *int   `json:"baseRent"`
}

// UpdateRoomRequest là DTO cho request cập nhật thuộc tính phòng
type UpdateRoomRequest struct {
	RoomId     uint    `json:"id" binding:"required"`
	RoomNo     *string `json:"roomNo"`
	Type       *uint   `json:"type"`
	Furnishing *uint   `json:"furnishing"`
	BaseRent   *int    `json:"baseRent"`
	Active     *bool   `json:"active"`
}

// ResizeCapacityRequest là DTO cho request đổi sức chứa phòng
type ResizeCapacityRequest struct {
	RoomId      uint `json:"id" binding:"required"`
	NewCapacity int  `json:"newCapacity" binding:"required"`
}

// RoomOverrideRequest là DTO cho request override trạng thái phòng
type RoomOverrideRequest struct {
	RoomId   uint `json:"id" binding:"required"`
	Override int  `json:"override"`
}

// RoomResponse là DTO cho thông tin phòng trả về
type RoomResponse struct {
	RoomId        uint      `json:"id"`
	PropertyID    uint      `json:"propertyId"`
	RoomNo        string    `json:"roomNo"`
	Capacity      int       `json:"capacity"`
	Type          uint      `json:"type"`
	Furnishing    uint      `json:"furnishing"`
	BaseRent      *int      `json:"baseRent,omitempty"`
	Active        bool      `json:"active"`
	Status        int       `json:"status"`
	BedCount      int       `json:"bedCount"`
	OccupiedCount int       `json:"occupiedCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RoomDetailResponse là DTO cho chi tiết phòng kèm giường
type RoomDetailResponse struct {
	RoomResponse
	Beds []BedResponse `json:"beds"`
}

// RoomSearchResult là DTO cho một kết quả tìm phòng
type RoomSearchResult struct {
	Room  RoomResponse `json:"room"`
	Score int          `json:"score"`
}
