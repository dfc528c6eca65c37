package services

import (
	"time"

	"qltro/constants"
	"qltro/dto"
	"qltro/errors"
	"qltro/models"
	"qltro/services/logger"
	"qltro/validator"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// DueAssignmentService gán khoản thu cho hợp đồng và theo dõi thanh toán
type DueAssignmentService struct {
	db     *gorm.DB
	ws     *melody.Melody
	logger logger.Logger
	now    func() time.Time
}

// DueAssignmentServiceOptions là option khởi tạo DueAssignmentService
type DueAssignmentServiceOptions struct {
	DB     *gorm.DB
	WS     *melody.Melody
	Logger logger.Logger
	Now    func() time.Time
}

// NewDueAssignmentService tạo instance mới của DueAssignmentService
func NewDueAssignmentService(opts DueAssignmentServiceOptions) *DueAssignmentService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &DueAssignmentService{
		db:     opts.DB,
		ws:     opts.WS,
		logger: opts.Logger,
		now:    opts.Now,
	}
}

// ResolveAmount xác định số tiền của khoản thu theo loại.
// Cố định: số tiền gửi lên (nếu có) phải đúng bằng số tiền của loại,
// bỏ trống thì lấy số tiền của loại. Biến đổi: bắt buộc gửi số tiền dương.
func ResolveAmount(category *models.DueCategory, supplied *int) (int, error) {
	switch category.BillingType {
	case constants.BillingTypeFixed:
		if category.Amount == nil {
			return 0, errors.NewAppError(errors.ErrCodeConsistency,
				"Loại khoản thu cố định không có số tiền", nil)
		}
		if supplied != nil && *supplied != *category.Amount {
			return 0, errors.NewAppError(errors.ErrCodeAmountMismatch,
				"Số tiền không khớp với khoản thu cố định", nil)
		}
		return *category.Amount, nil
	case constants.BillingTypeVariable:
		if supplied == nil || *supplied <= 0 {
			return 0, errors.NewAppError(errors.ErrCodeMissingAmount,
				"Khoản thu biến đổi phải kèm số tiền dương", nil)
		}
		return *supplied, nil
	}
	return 0, errors.NewAppError(errors.ErrCodeValidation, "Loại khoản thu không hợp lệ", nil)
}

// checkAssignTarget kiểm tra loại khoản thu và hợp đồng trước khi gán
func checkAssignTarget(category *models.DueCategory, tenancy *models.Tenancy) error {
	if !category.Active {
		return errors.NewAppError(errors.ErrCodeCategoryInactive,
			"Loại khoản thu đã bị tắt, không gán thêm được", nil)
	}
	if tenancy.Status == constants.TenancyStatusTerminated {
		return errors.NewAppError(errors.ErrCodeTenancyInactive,
			"Hợp đồng thuê đã kết thúc, không gán khoản thu được", nil)
	}
	return nil
}

// overdueCutoff trả về mốc so sánh của lần quét: khoản thu chỉ quá hạn
// khi đã qua hết ngày đến hạn, đúng với việc gán chấp nhận hạn là hôm nay
func overdueCutoff(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Assign gán một khoản thu cho hợp đồng thuê
func (s *DueAssignmentService) Assign(req dto.AssignDueRequest) (*models.DueAssignment, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	dueDate, err := time.Parse(validator.DateLayout, req.DueDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDueDate, "Ngày đến hạn không hợp lệ", err)
	}

	now := s.now()
	if err := validator.ValidateDueDate(dueDate, now); err != nil {
		return nil, err
	}

	var category models.DueCategory
	if err := s.db.First(&category, req.CategoryID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy loại khoản thu", err)
	}

	var tenancy models.Tenancy
	if err := s.db.First(&tenancy, req.TenancyID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy hợp đồng thuê", err)
	}

	if err := checkAssignTarget(&category, &tenancy); err != nil {
		return nil, err
	}

	amount, err := ResolveAmount(&category, req.Amount)
	if err != nil {
		return nil, err
	}

	assignment := models.DueAssignment{
		CategoryID: req.CategoryID,
		TenancyID:  req.TenancyID,
		Amount:     amount,
		DueDate:    dueDate,
		Status:     constants.DueStatusPending,
	}

	if err := s.db.Create(&assignment).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo khoản thu", err)
	}

	s.logger.Info("Đã gán khoản thu %q (%d) cho hợp đồng %d, hạn %s",
		category.Name, amount, req.TenancyID, dueDate.Format(validator.DateLayout))
	return &assignment, nil
}

// MarkPaid đánh dấu khoản thu đã thanh toán. Paid là trạng thái cuối,
// gọi lặp lại trả về bản ghi cũ chứ không báo lỗi.
func (s *DueAssignmentService) MarkPaid(assignmentID uint) (*models.DueAssignment, error) {
	var assignment models.DueAssignment
	if err := s.db.First(&assignment, assignmentID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy khoản thu", err)
	}

	if assignment.IsPaid() {
		return &assignment, nil
	}

	now := s.now()
	assignment.Status = constants.DueStatusPaid
	assignment.PaidAt = &now

	if err := s.db.Model(&assignment).Updates(map[string]interface{}{
		"status":  assignment.Status,
		"paid_at": assignment.PaidAt,
	}).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật khoản thu", err)
	}

	s.logger.Info("Khoản thu %d đã thanh toán", assignmentID)
	return &assignment, nil
}

// MarkOverdueSweep quét các khoản thu Pending đã quá hạn sang Overdue.
// Không bao giờ đụng tới khoản đã Paid. Trả về số bản ghi đã chuyển.
func (s *DueAssignmentService) MarkOverdueSweep() (int, error) {
	cutoff := overdueCutoff(s.now())
	result := s.db.Model(&models.DueAssignment{}).
		Where("status = ? AND due_date < ?", constants.DueStatusPending, cutoff).
		Update("status", constants.DueStatusOverdue)
	if result.Error != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể quét khoản thu quá hạn", result.Error)
	}

	swept := int(result.RowsAffected)
	if swept > 0 {
		s.logger.Info("Đã chuyển %d khoản thu sang quá hạn", swept)
	}
	return swept, nil
}

// ListAssignments lấy danh sách khoản thu, lọc theo hợp đồng/trạng thái nếu có
func (s *DueAssignmentService) ListAssignments(tenancyID uint, status *int, page, limit int) ([]models.DueAssignment, int64, error) {
	var (
		assignments []models.DueAssignment
		total       int64
	)

	query := s.db.Model(&models.DueAssignment{}).Preload("Category")
	if tenancyID != 0 {
		query = query.Where("tenancy_id = ?", tenancyID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể đếm khoản thu", err)
	}

	if page > 0 && limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	if err := query.Order("due_date").Find(&assignments).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách khoản thu", err)
	}

	return assignments, total, nil
}

// ToDueAssignmentResponse chuyển model sang DTO
func ToDueAssignmentResponse(a *models.DueAssignment) dto.DueAssignmentResponse {
	return dto.DueAssignmentResponse{
		ID:           a.ID,
		CategoryID:   a.CategoryID,
		CategoryName: a.Category.Name,
		TenancyID:    a.TenancyID,
		Amount:       a.Amount,
		DueDate:      a.DueDate,
		Status:       a.Status,
		PaidAt:       a.PaidAt,
		CreatedAt:    a.CreatedAt,
	}
}

// DueSweeperAdapter cho phép jobs gọi quét quá hạn mà không import services
type DueSweeperAdapter struct {
	svc *DueAssignmentService
}

// NewDueSweeperAdapter tạo adapter cho DueAssignmentService
func NewDueSweeperAdapter(svc *DueAssignmentService) *DueSweeperAdapter {
	return &DueSweeperAdapter{svc: svc}
}

// SweepOverdues chạy quét và đẩy kết quả qua websocket
func (a *DueSweeperAdapter) SweepOverdues(m *melody.Melody) error {
	swept, err := a.svc.MarkOverdueSweep()
	if err != nil {
		return err
	}
	BroadcastDueSweep(m, swept, "cron")
	return nil
}
