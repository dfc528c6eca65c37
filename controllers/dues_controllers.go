package controllers

import (
	"strconv"

	"qltro/dto"
	"qltro/response"
	"qltro/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// DuesController xử lý loại khoản thu và khoản thu
type DuesController struct {
	categorySvc   *services.DueCategoryService
	assignmentSvc *services.DueAssignmentService
	ws            *melody.Melody
}

// NewDuesController tạo instance mới của DuesController
func NewDuesController(categorySvc *services.DueCategoryService, assignmentSvc *services.DueAssignmentService, ws *melody.Melody) *DuesController {
	return &DuesController{
		categorySvc:   categorySvc,
		assignmentSvc: assignmentSvc,
		ws:            ws,
	}
}

// CreateDueCategory tạo loại khoản thu
func (ctrl *DuesController) CreateDueCategory(c *gin.Context) {
	var req dto.CreateDueCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	actor := currentActor(c)
	category, err := ctrl.categorySvc.CreateCategory(actor.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.ToDueCategoryResponse(category))
}

// UpdateDueCategory cập nhật loại khoản thu
func (ctrl *DuesController) UpdateDueCategory(c *gin.Context) {
	var req dto.UpdateDueCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	category, err := ctrl.categorySvc.UpdateCategory(req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.ToDueCategoryResponse(category))
}

// SetDueCategoryActive bật/tắt loại khoản thu
func (ctrl *DuesController) SetDueCategoryActive(c *gin.Context) {
	var req dto.DueCategoryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	category, err := ctrl.categorySvc.SetActive(req.CategoryId, req.Active)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.ToDueCategoryResponse(category))
}

// DeleteDueCategory xóa loại khoản thu chưa từng được gán
func (ctrl *DuesController) DeleteDueCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID loại khoản thu không hợp lệ")
		return
	}

	if err := ctrl.categorySvc.DeleteCategory(uint(categoryID)); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, nil)
}

// GetDueCategories lấy danh sách loại khoản thu của người thao tác
func (ctrl *DuesController) GetDueCategories(c *gin.Context) {
	actor := currentActor(c)
	categories, err := ctrl.categorySvc.ListCategories(actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	categoryResponses := make([]dto.DueCategoryResponse, 0, len(categories))
	for i := range categories {
		categoryResponses = append(categoryResponses, services.ToDueCategoryResponse(&categories[i]))
	}
	response.Success(c, categoryResponses)
}

// AssignDue gán khoản thu cho hợp đồng
func (ctrl *DuesController) AssignDue(c *gin.Context) {
	var req dto.AssignDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	assignment, err := ctrl.assignmentSvc.Assign(req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.ToDueAssignmentResponse(assignment))
}

// MarkDuePaid đánh dấu khoản thu đã thanh toán
func (ctrl *DuesController) MarkDuePaid(c *gin.Context) {
	var req dto.MarkDuePaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	assignment, err := ctrl.assignmentSvc.MarkPaid(req.AssignmentId)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.ToDueAssignmentResponse(assignment))
}

// GetDueAssignments lấy danh sách khoản thu
func (ctrl *DuesController) GetDueAssignments(c *gin.Context) {
	page, limit := pageParams(c)
	tenancyID, _ := strconv.ParseUint(c.DefaultQuery("tenancyId", "0"), 10, 64)

	var status *int
	if raw := c.Query("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "status không hợp lệ")
			return
		}
		status = &parsed
	}

	assignments, total, err := ctrl.assignmentSvc.ListAssignments(uint(tenancyID), status, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	assignmentResponses := make([]dto.DueAssignmentResponse, 0, len(assignments))
	for i := range assignments {
		assignmentResponses = append(assignmentResponses, services.ToDueAssignmentResponse(&assignments[i]))
	}
	response.SuccessWithPagination(c, assignmentResponses, page, limit, int(total))
}

// ForceOverdueSweep chạy quét khoản thu quá hạn theo yêu cầu của admin
func (ctrl *DuesController) ForceOverdueSweep(c *gin.Context) {
	swept, err := ctrl.assignmentSvc.MarkOverdueSweep()
	if err != nil {
		respondError(c, err)
		return
	}

	services.BroadcastDueSweep(ctrl.ws, swept, "manual")
	response.Success(c, gin.H{"swept": swept})
}
