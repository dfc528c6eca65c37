package services

import (
	"qltro/constants"
	"qltro/dto"
	"qltro/errors"
	"qltro/models"
	"qltro/services/logger"
	"qltro/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomService xử lý nghiệp vụ sức chứa phòng
type RoomService struct {
	db     *gorm.DB
	logger logger.Logger
}

// RoomServiceOptions là option khởi tạo RoomService
type RoomServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// NewRoomService tạo instance mới của RoomService
func NewRoomService(opts RoomServiceOptions) *RoomService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// CreateRoom tạo phòng mới, từ chối capacity không dương
func (s *RoomService) CreateRoom(req dto.CreateRoomRequest) (*models.Room, error) {
	room := models.Room{
		PropertyID: req.PropertyID,
		RoomNo:     req.RoomNo,
		Capacity:   req.Capacity,
		Type:       req.Type,
		Furnishing: req.Furnishing,
		BaseRent:   req.BaseRent,
		Active:     true,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		return nil, err
	}

	var property models.Property
	if err := s.db.First(&property, req.PropertyID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy khu trọ", err)
	}

	var dup int64
	if err := s.db.Model(&models.Room{}).Where("property_id = ? AND room_no = ?", req.PropertyID, req.RoomNo).Count(&dup).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra số phòng", err)
	}
	if dup > 0 {
		return nil, errors.NewAppError(errors.ErrCodeDBDuplicate, "Số phòng đã tồn tại trong khu trọ", nil)
	}

	if err := s.db.Create(&room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo phòng", err)
	}

	s.logger.Info("Đã tạo phòng %s (khu trọ %d, sức chứa %d)", room.RoomNo, room.PropertyID, room.Capacity)
	return &room, nil
}

// GetRoomWithBeds lấy phòng kèm danh sách giường
func (s *RoomService) GetRoomWithBeds(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.Preload("Beds").First(&room, roomID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", err)
	}
	return &room, nil
}

// UpdateRoom cập nhật thuộc tính phòng (không đụng tới capacity)
func (s *RoomService) UpdateRoom(req dto.UpdateRoomRequest) (*models.Room, error) {
	room, err := s.GetRoomWithBeds(req.RoomId)
	if err != nil {
		return nil, err
	}

	if req.RoomNo != nil {
		room.RoomNo = *req.RoomNo
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	if req.Furnishing != nil {
		room.Furnishing = *req.Furnishing
	}
	if req.BaseRent != nil {
		room.BaseRent = req.BaseRent
	}
	if req.Active != nil {
		room.Active = *req.Active
	}

	if err := s.db.Save(room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật phòng", err)
	}
	return room, nil
}

// ResizeCapacity đổi sức chứa, từ chối khi nhỏ hơn số giường hiện tại.
// Dòng phòng bị khóa để việc so với số giường và cập nhật là một đơn vị.
func (s *RoomService) ResizeCapacity(roomID uint, newCapacity int) (*models.Room, error) {
	if newCapacity <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải là số dương", nil)
	}

	var room models.Room
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Beds").First(&room, roomID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", err)
		}

		if !room.CanResize(newCapacity) {
			return errors.NewAppError(errors.ErrCodeBelowOccupancy,
				"Sức chứa mới nhỏ hơn số giường hiện có, hãy xóa giường trước", nil)
		}

		room.Capacity = newCapacity
		if err := tx.Model(&room).Update("capacity", newCapacity).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật sức chứa", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Đã đổi sức chứa phòng %d thành %d", roomID, newCapacity)
	return &room, nil
}

// SetOverride đặt hoặc gỡ override trạng thái phòng (bảo trì/khóa)
func (s *RoomService) SetOverride(roomID uint, override int) (*models.Room, error) {
	room, err := s.GetRoomWithBeds(roomID)
	if err != nil {
		return nil, err
	}

	room.Override = override
	if err := room.ValidateOverride(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái override không hợp lệ", err)
	}

	if err := s.db.Save(room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật trạng thái phòng", err)
	}
	return room, nil
}

// DeleteRoom xóa phòng, chỉ cho phép khi không còn giường nào
func (s *RoomService) DeleteRoom(roomID uint) error {
	room, err := s.GetRoomWithBeds(roomID)
	if err != nil {
		return err
	}

	if room.BedCount() > 0 {
		return errors.NewAppError(errors.ErrCodeRoomNotEmpty, "Phòng còn giường, hãy xóa hết giường trước", nil)
	}

	if err := s.db.Delete(&models.Room{}, roomID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể xóa phòng", err)
	}

	s.logger.Info("Đã xóa phòng %d", roomID)
	return nil
}

// ListRooms lấy danh sách phòng theo khu trọ, có phân trang
func (s *RoomService) ListRooms(propertyID uint, page, limit int) ([]models.Room, int64, error) {
	var (
		rooms []models.Room
		total int64
	)

	query := s.db.Model(&models.Room{}).Preload("Beds")
	if propertyID != 0 {
		query = query.Where("property_id = ?", propertyID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể đếm phòng", err)
	}

	if page > 0 && limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	if err := query.Order("room_no").Find(&rooms).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách phòng", err)
	}

	return rooms, total, nil
}

// ToRoomResponse chuyển model sang DTO, trạng thái luôn tính lại từ giường
func ToRoomResponse(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		RoomId:        room.RoomId,
		PropertyID:    room.PropertyID,
		RoomNo:        room.RoomNo,
		Capacity:      room.Capacity,
		Type:          room.Type,
		Furnishing:    room.Furnishing,
		BaseRent:      room.BaseRent,
		Active:        room.Active,
		Status:        room.DerivedStatus(),
		BedCount:      room.BedCount(),
		OccupiedCount: room.OccupiedCount(),
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}

// ToBedResponse chuyển model giường sang DTO
func ToBedResponse(bed *models.Bed) dto.BedResponse {
	return dto.BedResponse{
		BedId:             bed.BedId,
		RoomID:            bed.RoomID,
		BedNo:             bed.BedNo,
		Type:              bed.Type,
		Price:             bed.Price,
		Deposit:           bed.Deposit,
		MaintenanceCharge: bed.MaintenanceCharge,
		Status:            bed.Status,
		HasAC:             bed.HasAC,
		HasBathroom:       bed.HasBathroom,
		HasLocker:         bed.HasLocker,
		HasStudyTable:     bed.HasStudyTable,
		HasWardrobe:       bed.HasWardrobe,
		Condition:         bed.Condition,
		CreatedAt:         bed.CreatedAt,
		UpdatedAt:         bed.UpdatedAt,
	}
}

// statusLabel map trạng thái phòng sang nhãn (dùng cho log)
func statusLabel(status int) string {
	switch status {
	case constants.RoomStatusAvailable:
		return "trống"
	case constants.RoomStatusPartiallyOccupied:
		return "còn chỗ"
	case constants.RoomStatusFullyOccupied:
		return "đầy"
	case constants.RoomStatusUnderMaintenance:
		return "bảo trì"
	case constants.RoomStatusBlocked:
		return "khóa"
	}
	return "không rõ"
}

// CreateProperty tạo khu trọ mới cho một chủ trọ
func (s *RoomService) CreateProperty(ownerID uint, name, address string) (*models.Property, error) {
	if name == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Tên khu trọ không được để trống", nil)
	}

	property := models.Property{
		OwnerID: ownerID,
		Name:    name,
		Address: address,
		Active:  true,
	}
	if err := s.db.Create(&property).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo khu trọ", err)
	}

	s.logger.Info("Đã tạo khu trọ %q (owner %d)", name, ownerID)
	return &property, nil
}

// ListProperties lấy danh sách khu trọ của một chủ trọ
func (s *RoomService) ListProperties(ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	query := s.db.Model(&models.Property{})
	if ownerID != 0 {
		query = query.Where("owner_id = ?", ownerID)
	}
	if err := query.Order("name").Find(&properties).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách khu trọ", err)
	}
	return properties, nil
}
