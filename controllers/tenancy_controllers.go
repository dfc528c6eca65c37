package controllers

import (
	"strconv"

	"qltro/dto"
	"qltro/response"
	"qltro/services"

	"github.com/gin-gonic/gin"
)

// TenancyController xử lý các request liên quan đến hợp đồng thuê
type TenancyController struct {
	svc *services.TenancyService
}

// NewTenancyController tạo instance mới của TenancyController
func NewTenancyController(svc *services.TenancyService) *TenancyController {
	return &TenancyController{svc: svc}
}

// BindTenant gán người thuê vào giường
func (ctrl *TenancyController) BindTenant(c *gin.Context) {
	var req dto.BindTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	tenancy, err := ctrl.svc.BindTenant(req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.ToTenancyResponse(tenancy))
}

// TransitionTenancy chuyển trạng thái hợp đồng
func (ctrl *TenancyController) TransitionTenancy(c *gin.Context) {
	var req dto.TenancyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	tenancy, err := ctrl.svc.Transition(req.TenancyId, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.ToTenancyResponse(tenancy))
}

// GetTenancies lấy danh sách hợp đồng
func (ctrl *TenancyController) GetTenancies(c *gin.Context) {
	page, limit := pageParams(c)

	var status *int
	if raw := c.Query("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "status không hợp lệ")
			return
		}
		status = &parsed
	}

	tenancies, total, err := ctrl.svc.ListTenancies(status, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	tenancyResponses := make([]dto.TenancyResponse, 0, len(tenancies))
	for i := range tenancies {
		tenancyResponses = append(tenancyResponses, services.ToTenancyResponse(&tenancies[i]))
	}
	response.SuccessWithPagination(c, tenancyResponses, page, limit, int(total))
}

// GetTenancyDetail lấy chi tiết một hợp đồng
func (ctrl *TenancyController) GetTenancyDetail(c *gin.Context) {
	tenancyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID hợp đồng không hợp lệ")
		return
	}

	tenancy, err := ctrl.svc.GetTenancy(uint(tenancyID))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.ToTenancyResponse(tenancy))
}

// GetActiveTenancyForBed lấy hợp đồng còn sống của một giường (nếu có)
func (ctrl *TenancyController) GetActiveTenancyForBed(c *gin.Context) {
	bedID, err := strconv.ParseUint(c.DefaultQuery("bedId", "0"), 10, 64)
	if err != nil || bedID == 0 {
		response.BadRequest(c, "bedId là bắt buộc")
		return
	}

	tenancy, err := ctrl.svc.ListActiveForBed(uint(bedID))
	if err != nil {
		respondError(c, err)
		return
	}

	if tenancy == nil {
		response.Success(c, nil)
		return
	}
	response.Success(c, services.ToTenancyResponse(tenancy))
}
