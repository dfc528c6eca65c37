package services

import (
	"context"
	"time"

	"qltro/constants"
	"qltro/dto"
	"qltro/errors"
	"qltro/models"
	"qltro/services/logger"
	"qltro/validator"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomCacheKey là key cache danh sách phòng, xóa sau mỗi mutation occupancy
const RoomCacheKey = "rooms:all"

// BedService xử lý nghiệp vụ giường và máy trạng thái occupancy
type BedService struct {
	db     *gorm.DB
	rdb    *redis.Client
	ws     *melody.Melody
	logger logger.Logger
}

// BedServiceOptions là option khởi tạo BedService
type BedServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	WS     *melody.Melody
	Logger logger.Logger
}

// NewBedService tạo instance mới của BedService
func NewBedService(opts BedServiceOptions) *BedService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BedService{
		db:     opts.DB,
		rdb:    opts.Redis,
		ws:     opts.WS,
		logger: opts.Logger,
	}
}

// AddBed thêm giường vào phòng, từ chối khi phòng đã đủ giường.
// Dòng phòng bị khóa trong transaction nên hai request thêm giường cùng lúc
// không thể vượt sức chứa.
func (s *BedService) AddBed(req dto.AddBedRequest) (*models.Bed, error) {
	condition := req.Condition
	if condition == 0 {
		condition = 3
	}

	bed := models.Bed{
		RoomID:            req.RoomID,
		BedNo:             req.BedNo,
		Type:              req.Type,
		Price:             req.Price,
		Deposit:           req.Deposit,
		MaintenanceCharge: req.MaintenanceCharge,
		Status:            constants.BedStatusAvailable,
		HasAC:             req.HasAC,
		HasBathroom:       req.HasBathroom,
		HasLocker:         req.HasLocker,
		HasStudyTable:     req.HasStudyTable,
		HasWardrobe:       req.HasWardrobe,
		Condition:         condition,
	}

	if err := validator.ValidateBed(&bed); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Beds").First(&room, req.RoomID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", err)
		}

		if !room.CanAddBed() {
			return errors.NewAppError(errors.ErrCodeRoomFull,
				"Phòng đã đủ giường, hãy tăng sức chứa trước", nil)
		}

		var dup int64
		if err := tx.Model(&models.Bed{}).Where("room_id = ? AND bed_no = ?", req.RoomID, req.BedNo).Count(&dup).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra số giường", err)
		}
		if dup > 0 {
			return errors.NewAppError(errors.ErrCodeDBDuplicate, "Số giường đã tồn tại trong phòng", nil)
		}

		if err := tx.Create(&bed).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể thêm giường", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateRoomCache()
	s.logger.Info("Đã thêm giường %s vào phòng %d", bed.BedNo, req.RoomID)
	return &bed, nil
}

// checkBedRemovable kiểm tra giường xóa được không: đang có người ở hoặc
// còn hợp đồng sống (kể cả khi status báo trống) đều từ chối.
func checkBedRemovable(bed *models.Bed, liveTenancies int64) error {
	if bed.Status == constants.BedStatusOccupied {
		return errors.NewAppError(errors.ErrCodeBedOccupied,
			"Giường đang có người ở, hãy kết thúc hợp đồng trước", nil)
	}
	if liveTenancies > 0 {
		return errors.NewAppError(errors.ErrCodeBedOccupied,
			"Giường còn hợp đồng thuê chưa kết thúc", nil)
	}
	return nil
}

// RemoveBed xóa giường; giường đang có người ở hoặc còn hợp đồng sống thì từ chối.
// Các hợp đồng đã kết thúc gắn với giường bị xóa theo (giữ nguyên atomic trong 1 tx).
func (s *BedService) RemoveBed(bedID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var bed models.Bed
		if err := tx.First(&bed, bedID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy giường", err)
		}

		var live int64
		if err := tx.Model(&models.Tenancy{}).
			Where("bed_id = ? AND status IN ?", bedID, []int{
				constants.TenancyStatusPendingApproval,
				constants.TenancyStatusActive,
				constants.TenancyStatusNoticePeriod,
			}).Count(&live).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra hợp đồng của giường", err)
		}
		if err := checkBedRemovable(&bed, live); err != nil {
			return err
		}

		if err := tx.Where("bed_id = ? AND status = ?", bedID, constants.TenancyStatusTerminated).
			Delete(&models.Tenancy{}).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể xóa lịch sử hợp đồng", err)
		}

		if err := tx.Delete(&models.Bed{}, bedID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể xóa giường", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateRoomCache()
	s.logger.Info("Đã xóa giường %d", bedID)
	return nil
}

// ToggleManualStatus đổi trạng thái giường bằng tay.
// Chỉ cho phép Available <-> Maintenance/Blocked; Occupied chỉ đi qua hợp đồng thuê.
func (s *BedService) ToggleManualStatus(req dto.BedStatusRequest) (*models.Bed, error) {
	var bed models.Bed
	if err := s.db.First(&bed, req.BedId).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy giường", err)
	}

	state := models.GetBedState(bed.Status)
	var err error
	switch req.Status {
	case constants.BedStatusOccupied:
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition,
			"Không thể tự chuyển giường sang có người ở, hãy tạo hợp đồng thuê", nil)
	case constants.BedStatusMaintenance:
		err = state.Maintain(&bed)
	case constants.BedStatusBlocked:
		err = state.Block(&bed)
	case constants.BedStatusAvailable:
		if bed.Status == constants.BedStatusOccupied {
			return nil, errors.NewAppError(errors.ErrCodeInvalidTransition,
				"Giường đang có hợp đồng thuê, hãy kết thúc hợp đồng trước", nil)
		}
		err = state.Reopen(&bed)
	default:
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái giường không hợp lệ", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Chuyển trạng thái không hợp lệ", err)
	}

	if err := s.db.Save(&bed).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật giường", err)
	}

	s.afterBedChange(&bed)
	return &bed, nil
}

// ListBedsByRoom lấy danh sách giường của một phòng
func (s *BedService) ListBedsByRoom(roomID uint) ([]models.Bed, error) {
	var beds []models.Bed
	if err := s.db.Where("room_id = ?", roomID).Order("bed_no").Find(&beds).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách giường", err)
	}
	return beds, nil
}

// afterBedChange tính lại trạng thái phòng và đẩy sự kiện sau mỗi thay đổi giường
func (s *BedService) afterBedChange(bed *models.Bed) {
	s.invalidateRoomCache()

	var room models.Room
	if err := s.db.Preload("Beds").First(&room, bed.RoomID).Error; err != nil {
		s.logger.Error("Không thể tính lại trạng thái phòng %d: %v", bed.RoomID, err)
		return
	}

	status := room.DerivedStatus()
	s.logger.Info("Phòng %d hiện %s (%d/%d giường có người)", room.RoomId, statusLabel(status), room.OccupiedCount(), room.BedCount())

	BroadcastOccupancy(s.ws, OccupancyEvent{
		Type:       "bed_status",
		RoomID:     bed.RoomID,
		BedID:      bed.BedId,
		BedStatus:  bed.Status,
		RoomStatus: status,
	})
}

// invalidateRoomCache xóa cache danh sách phòng trên Redis
func (s *BedService) invalidateRoomCache() {
	if s.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := DeleteFromRedis(ctx, s.rdb, RoomCacheKey); err != nil {
		s.logger.Error("Lỗi khi xóa cache phòng: %v", err)
	}
}
