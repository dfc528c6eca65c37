package services

import (
	"time"

	"qltro/builders"
	"qltro/commands"
	"qltro/constants"
	"qltro/dto"
	"qltro/errors"
	"qltro/models"
	"qltro/services/logger"
	"qltro/validator"

	"github.com/olahol/melody"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TenancyService gán người thuê vào giường và quản lý vòng đời hợp đồng
type TenancyService struct {
	db     *gorm.DB
	ws     *melody.Melody
	bedSvc *BedService
	logger logger.Logger
}

// TenancyServiceOptions là option khởi tạo TenancyService
type TenancyServiceOptions struct {
	DB     *gorm.DB
	WS     *melody.Melody
	BedSvc *BedService
	Logger logger.Logger
}

// NewTenancyService tạo instance mới của TenancyService
func NewTenancyService(opts TenancyServiceOptions) *TenancyService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &TenancyService{
		db:     opts.DB,
		ws:     opts.WS,
		bedSvc: opts.BedSvc,
		logger: opts.Logger,
	}
}

// checkBindTarget kiểm tra phòng và giường có nhận người thuê mới được không.
// existing là hợp đồng còn sống của giường nếu có.
func checkBindTarget(room *models.Room, bed *models.Bed, existing *models.Tenancy) error {
	if !room.Active || room.Override != constants.RoomOverrideNone {
		return errors.NewAppError(errors.ErrCodeRoomInactive, "Phòng đang không nhận người thuê", nil)
	}
	if bed.Status != constants.BedStatusAvailable {
		return errors.NewAppError(errors.ErrCodeBedNotAvailable, "Giường không ở trạng thái trống", nil)
	}
	if existing != nil {
		return errors.NewAppError(errors.ErrCodeBedNotAvailable, "Giường đã có hợp đồng thuê chưa kết thúc", nil)
	}
	return nil
}

// releaseTerminatedBed trả giường về trống khi hợp đồng kết thúc.
// Hợp đồng còn sống mà giường không Occupied là dữ liệu lệch.
func releaseTerminatedBed(bed *models.Bed) error {
	if bed.Status != constants.BedStatusOccupied {
		return errors.NewAppError(errors.ErrCodeConsistency,
			"Trạng thái giường và hợp đồng không khớp", nil)
	}
	if err := models.GetBedState(bed.Status).Release(bed); err != nil {
		return errors.NewAppError(errors.ErrCodeConsistency, "Không thể trả giường về trống", err)
	}
	return nil
}

// BindTenant gán người thuê vào giường. Giường bị khóa dòng (FOR UPDATE)
// trong transaction nên hai request gán cùng lúc chỉ có đúng một cái thành công,
// cái còn lại nhận BED_NOT_AVAILABLE. Tạo hợp đồng và chuyển giường sang
// Occupied là một đơn vị atomic.
func (s *TenancyService) BindTenant(req dto.BindTenantRequest) (*models.Tenancy, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if err := validator.ValidateBindTerms(&req); err != nil {
		return nil, err
	}
	moveIn, _ := time.Parse(validator.DateLayout, req.MoveInDate)

	var tenant models.User
	if err := s.db.First(&tenant, req.TenantID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "Không tìm thấy người thuê", err)
	}

	var tenancy models.Tenancy
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var bed models.Bed
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bed, req.BedID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy giường", err)
		}

		var room models.Room
		if err := tx.First(&room, bed.RoomID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng của giường", err)
		}
		// Kiểm tra bất biến một-người-một-giường trước khi gán
		existing, err := listActiveForBedTx(tx, req.BedID)
		if err != nil {
			return err
		}
		if err := checkBindTarget(&room, &bed, existing); err != nil {
			return err
		}

		price := bed.Price
		if req.Price != nil {
			price = *req.Price
		}
		deposit := bed.Deposit
		if req.Deposit != nil {
			deposit = *req.Deposit
		}
		rentDueDay := req.RentDueDay
		if rentDueDay == 0 {
			rentDueDay = 1
		}
		noticeDays := req.NoticeDays
		if noticeDays == 0 {
			noticeDays = 30
		}

		tenancy = *builders.NewTenancyBuilder().
			WithTenant(req.TenantID).
			WithBed(bed.RoomID, bed.BedId).
			WithStatus(constants.TenancyStatusPendingApproval).
			WithMoveIn(moveIn).
			WithFinancials(price, deposit).
			WithTerms(req.AgreementMonths, noticeDays, rentDueDay).
			Build()
		if err := commands.NewCreateTenancyCommand(&tenancy, tx).Execute(); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo hợp đồng thuê", err)
		}

		state := models.GetBedState(bed.Status)
		if err := state.Occupy(&bed); err != nil {
			return errors.NewAppError(errors.ErrCodeBedNotAvailable, "Giường không ở trạng thái trống", err)
		}
		if err := commands.NewUpdateBedCommand(&bed, tx).Execute(); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật trạng thái giường", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterTenancyChange(&tenancy)
	s.logger.Info("Đã gán người thuê %d vào giường %d (hợp đồng %d)", req.TenantID, req.BedID, tenancy.TenancyId)
	return &tenancy, nil
}

// Transition chuyển trạng thái hợp đồng theo máy trạng thái
// Chờ duyệt -> Hiệu lực -> Báo trước -> Kết thúc (chờ duyệt có thể bị từ chối
// thẳng sang kết thúc). Kết thúc hợp đồng trả giường về trống trong cùng transaction.
func (s *TenancyService) Transition(tenancyID uint, newStatus int) (*models.Tenancy, error) {
	var tenancy models.Tenancy
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tenancy, tenancyID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy hợp đồng thuê", err)
		}

		state := models.GetTenancyState(tenancy.Status)
		var err error
		switch newStatus {
		case constants.TenancyStatusActive:
			err = state.Approve(&tenancy)
		case constants.TenancyStatusNoticePeriod:
			err = state.StartNotice(&tenancy)
		case constants.TenancyStatusTerminated:
			err = state.Terminate(&tenancy)
		default:
			return errors.NewAppError(errors.ErrCodeInvalidTransition, "Trạng thái đích không hợp lệ", nil)
		}
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidTransition, "Chuyển trạng thái không hợp lệ", err)
		}

		if tenancy.Status == constants.TenancyStatusTerminated {
			now := time.Now()
			tenancy.TerminatedAt = &now

			var bed models.Bed
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bed, tenancy.BedID).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy giường của hợp đồng", err)
			}

			if err := releaseTerminatedBed(&bed); err != nil {
				return err
			}
			if err := commands.NewUpdateBedCommand(&bed, tx).Execute(); err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật trạng thái giường", err)
			}
		}

		if err := commands.NewUpdateTenancyCommand(&tenancy, tx).Execute(); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật hợp đồng", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterTenancyChange(&tenancy)
	s.logger.Info("Hợp đồng %d chuyển sang trạng thái %d", tenancy.TenancyId, tenancy.Status)
	return &tenancy, nil
}

// ListActiveForBed trả về hợp đồng còn sống của một giường (tối đa một)
func (s *TenancyService) ListActiveForBed(bedID uint) (*models.Tenancy, error) {
	return listActiveForBedTx(s.db, bedID)
}

func listActiveForBedTx(tx *gorm.DB, bedID uint) (*models.Tenancy, error) {
	var tenancies []models.Tenancy
	err := tx.Where("bed_id = ? AND status IN ?", bedID, []int{
		constants.TenancyStatusPendingApproval,
		constants.TenancyStatusActive,
		constants.TenancyStatusNoticePeriod,
	}).Find(&tenancies).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể truy vấn hợp đồng", err)
	}

	if len(tenancies) == 0 {
		return nil, nil
	}
	if len(tenancies) > 1 {
		return nil, errors.NewAppError(errors.ErrCodeConsistency,
			"Giường có nhiều hơn một hợp đồng chưa kết thúc", nil)
	}
	return &tenancies[0], nil
}

// GetTenancy lấy chi tiết một hợp đồng
func (s *TenancyService) GetTenancy(tenancyID uint) (*models.Tenancy, error) {
	var tenancy models.Tenancy
	if err := s.db.Preload("Tenant").First(&tenancy, tenancyID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy hợp đồng thuê", err)
	}
	return &tenancy, nil
}

// ListTenancies lấy danh sách hợp đồng, lọc theo trạng thái nếu có
func (s *TenancyService) ListTenancies(status *int, page, limit int) ([]models.Tenancy, int64, error) {
	var (
		tenancies []models.Tenancy
		total     int64
	)

	query := s.db.Model(&models.Tenancy{}).Preload("Tenant")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể đếm hợp đồng", err)
	}

	if page > 0 && limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	if err := query.Order("created_at DESC").Find(&tenancies).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách hợp đồng", err)
	}

	return tenancies, total, nil
}

// afterTenancyChange tính lại trạng thái phòng và đẩy sự kiện
func (s *TenancyService) afterTenancyChange(tenancy *models.Tenancy) {
	if s.bedSvc == nil {
		return
	}
	var bed models.Bed
	if err := s.db.First(&bed, tenancy.BedID).Error; err != nil {
		s.logger.Error("Không thể đọc lại giường %d: %v", tenancy.BedID, err)
		return
	}
	s.bedSvc.afterBedChange(&bed)
}

// ToTenancyResponse chuyển model hợp đồng sang DTO
func ToTenancyResponse(t *models.Tenancy) dto.TenancyResponse {
	return dto.TenancyResponse{
		TenancyId:       t.TenancyId,
		TenantID:        t.TenantID,
		TenantName:      t.Tenant.Name,
		RoomID:          t.RoomID,
		BedID:           t.BedID,
		Status:          t.Status,
		MoveInDate:      t.MoveInDate,
		Price:           t.Price,
		Deposit:         t.Deposit,
		AgreementMonths: t.AgreementMonths,
		NoticeDays:      t.NoticeDays,
		RentDueDay:      t.RentDueDay,
		TerminatedAt:    t.TerminatedAt,
		CreatedAt:       t.CreatedAt,
	}
}
