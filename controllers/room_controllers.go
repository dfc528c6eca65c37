package controllers

import (
	"context"
	"log"
	"strconv"
	"time"

	"qltro/dto"
	"qltro/response"
	"qltro/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RoomController xử lý các request liên quan đến phòng
type RoomController struct {
	svc       *services.RoomService
	searchSvc *services.RoomSearchService
	rdb       *redis.Client
}

// NewRoomController tạo instance mới của RoomController
func NewRoomController(svc *services.RoomService, searchSvc *services.RoomSearchService, rdb *redis.Client) *RoomController {
	return &RoomController{
		svc:       svc,
		searchSvc: searchSvc,
		rdb:       rdb,
	}
}

const defaultPageLimit = 20

// pageParams đọc tham số phân trang, mặc định trang 1 với 20 bản ghi
func pageParams(c *gin.Context) (int, int) {
	pq := dto.PaginationQuery{Page: 1, Limit: defaultPageLimit}
	if err := c.ShouldBindQuery(&pq); err != nil {
		return 1, defaultPageLimit
	}
	if pq.Page <= 0 {
		pq.Page = 1
	}
	if pq.Limit <= 0 {
		pq.Limit = defaultPageLimit
	}
	return pq.Page, pq.Limit
}

// roomCachePage là snapshot trang mặc định lưu trên Redis
type roomCachePage struct {
	Rooms []dto.RoomResponse `json:"rooms"`
	Total int                `json:"total"`
}

// canServeRoomCache: cache chỉ phục vụ đúng truy vấn mặc định,
// truy vấn có lọc hoặc phân trang khác đi thẳng xuống DB
func canServeRoomCache(propertyID uint, page, limit int) bool {
	return propertyID == 0 && page == 1 && limit == defaultPageLimit
}

// CreateRoom tạo phòng mới
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := ctrl.svc.CreateRoom(req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, services.ToRoomResponse(room))
}

// UpdateRoom cập nhật thuộc tính phòng
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := ctrl.svc.UpdateRoom(req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, services.ToRoomResponse(room))
}

// ResizeCapacity đổi sức chứa phòng
func (ctrl *RoomController) ResizeCapacity(c *gin.Context) {
	var req dto.ResizeCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := ctrl.svc.ResizeCapacity(req.RoomId, req.NewCapacity)
	if err != nil {
		respondError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, services.ToRoomResponse(room))
}

// ChangeRoomOverride đặt/gỡ override trạng thái phòng
func (ctrl *RoomController) ChangeRoomOverride(c *gin.Context) {
	var req dto.RoomOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := ctrl.svc.SetOverride(req.RoomId, req.Override)
	if err != nil {
		respondError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, services.ToRoomResponse(room))
}

// DeleteRoom xóa phòng (chỉ khi không còn giường)
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	if err := ctrl.svc.DeleteRoom(uint(roomID)); err != nil {
		respondError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, nil)
}

// GetAllRooms lấy danh sách phòng, có cache Redis cho truy vấn mặc định
func (ctrl *RoomController) GetAllRooms(c *gin.Context) {
	page, limit := pageParams(c)
	propertyID, _ := strconv.ParseUint(c.DefaultQuery("propertyId", "0"), 10, 64)

	useCache := ctrl.rdb != nil && canServeRoomCache(uint(propertyID), page, limit)
	if useCache {
		var cached roomCachePage
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := services.GetFromRedis(ctx, ctrl.rdb, services.RoomCacheKey, &cached); err == nil && len(cached.Rooms) > 0 {
			cancel()
			response.SuccessWithPagination(c, cached.Rooms, page, limit, cached.Total)
			return
		}
		cancel()
	}

	rooms, total, err := ctrl.svc.ListRooms(uint(propertyID), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		roomResponses = append(roomResponses, services.ToRoomResponse(&rooms[i]))
	}

	if useCache {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		snapshot := roomCachePage{Rooms: roomResponses, Total: int(total)}
		if err := services.SetToRedis(ctx, ctrl.rdb, services.RoomCacheKey, snapshot, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu cache phòng: %v", err)
		}
		cancel()
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, int(total))
}

// GetRoomDetail lấy chi tiết phòng kèm giường
func (ctrl *RoomController) GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	room, err := ctrl.svc.GetRoomWithBeds(uint(roomID))
	if err != nil {
		respondError(c, err)
		return
	}

	detail := dto.RoomDetailResponse{
		RoomResponse: services.ToRoomResponse(room),
		Beds:         make([]dto.BedResponse, 0, len(room.Beds)),
	}
	for i := range room.Beds {
		detail.Beds = append(detail.Beds, services.ToBedResponse(&room.Beds[i]))
	}

	response.Success(c, detail)
}

// SearchRooms tìm phòng theo câu truy vấn tự do
func (ctrl *RoomController) SearchRooms(c *gin.Context) {
	query := c.DefaultQuery("q", "")
	if query == "" {
		response.BadRequest(c, "q là bắt buộc")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	results, err := ctrl.searchSvc.Search(query, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, results)
}

// invalidateCache xóa cache danh sách phòng
func (ctrl *RoomController) invalidateCache() {
	if ctrl.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := services.DeleteFromRedis(ctx, ctrl.rdb, services.RoomCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}

// PropertyRequest là body cho request tạo khu trọ
type PropertyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// CreateProperty tạo khu trọ mới
func (ctrl *RoomController) CreateProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	actor := currentActor(c)
	property, err := ctrl.svc.CreateProperty(actor.UserID, req.Name, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, property)
}

// GetProperties lấy danh sách khu trọ của người thao tác
func (ctrl *RoomController) GetProperties(c *gin.Context) {
	actor := currentActor(c)
	properties, err := ctrl.svc.ListProperties(actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, properties)
}
