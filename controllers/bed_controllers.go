package controllers

import (
	"strconv"

	"qltro/dto"
	"qltro/response"
	"qltro/services"

	"github.com/gin-gonic/gin"
)

// BedController xử lý các request liên quan đến giường
type BedController struct {
	svc *services.BedService
}

// NewBedController tạo instance mới của BedController
func NewBedController(svc *services.BedService) *BedController {
	return &BedController{svc: svc}
}

// AddBed thêm giường vào phòng
func (ctrl *BedController) AddBed(c *gin.Context) {
	var req dto.AddBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	bed, err := ctrl.svc.AddBed(req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.ToBedResponse(bed))
}

// RemoveBed xóa giường
func (ctrl *BedController) RemoveBed(c *gin.Context) {
	bedID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID giường không hợp lệ")
		return
	}

	if err := ctrl.svc.RemoveBed(uint(bedID)); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, nil)
}

// ToggleBedStatus đổi trạng thái giường thủ công (bảo trì/khóa/mở lại)
func (ctrl *BedController) ToggleBedStatus(c *gin.Context) {
	var req dto.BedStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	bed, err := ctrl.svc.ToggleManualStatus(req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.ToBedResponse(bed))
}

// GetBedsByRoom lấy danh sách giường của một phòng
func (ctrl *BedController) GetBedsByRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.DefaultQuery("roomId", "0"), 10, 64)
	if err != nil || roomID == 0 {
		response.BadRequest(c, "roomId là bắt buộc")
		return
	}

	beds, err := ctrl.svc.ListBedsByRoom(uint(roomID))
	if err != nil {
		respondError(c, err)
		return
	}

	bedResponses := make([]dto.BedResponse, 0, len(beds))
	for i := range beds {
		bedResponses = append(bedResponses, services.ToBedResponse(&beds[i]))
	}
	response.Success(c, bedResponses)
}
