package services

import (
	"qltro/constants"
	"qltro/dto"
	"qltro/errors"
	"qltro/models"
	"qltro/services/logger"
	"qltro/validator"

	"gorm.io/gorm"
)

// DueCategoryService quản lý các loại khoản thu
type DueCategoryService struct {
	db     *gorm.DB
	logger logger.Logger
}

// DueCategoryServiceOptions là option khởi tạo DueCategoryService
type DueCategoryServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// NewDueCategoryService tạo instance mới của DueCategoryService
func NewDueCategoryService(opts DueCategoryServiceOptions) *DueCategoryService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &DueCategoryService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// CreateCategory tạo loại khoản thu. Loại cố định bắt buộc có số tiền,
// loại biến đổi không được kèm số tiền.
func (s *DueCategoryService) CreateCategory(ownerID uint, req dto.CreateDueCategoryRequest) (*models.DueCategory, error) {
	category := models.DueCategory{
		OwnerID:     ownerID,
		Name:        req.Name,
		BillingType: req.BillingType,
		Amount:      req.Amount,
		Active:      true,
	}

	if err := validator.ValidateDueCategory(&category); err != nil {
		return nil, err
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo loại khoản thu", err)
	}

	s.logger.Info("Đã tạo loại khoản thu %q (owner %d)", category.Name, ownerID)
	return &category, nil
}

// UpdateCategory cập nhật loại khoản thu. Đổi từ cố định sang biến đổi
// xóa số tiền đã lưu, đổi ngược lại bắt buộc kèm số tiền mới trong cùng patch.
func (s *DueCategoryService) UpdateCategory(req dto.UpdateDueCategoryRequest) (*models.DueCategory, error) {
	var category models.DueCategory
	if err := s.db.First(&category, req.CategoryId).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy loại khoản thu", err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}

	if req.BillingType != nil && *req.BillingType != category.BillingType {
		switch *req.BillingType {
		case constants.BillingTypeVariable:
			category.BillingType = constants.BillingTypeVariable
			category.Amount = nil
		case constants.BillingTypeFixed:
			if req.Amount == nil {
				return nil, errors.NewAppError(errors.ErrCodeMissingAmount,
					"Chuyển sang khoản thu cố định phải kèm số tiền mới", nil)
			}
			category.BillingType = constants.BillingTypeFixed
			category.Amount = req.Amount
		default:
			return nil, errors.NewAppError(errors.ErrCodeValidation, "Loại khoản thu không hợp lệ", nil)
		}
	} else if req.Amount != nil {
		category.Amount = req.Amount
	}

	if err := validator.ValidateDueCategory(&category); err != nil {
		return nil, err
	}

	// Save không dùng được vì Amount có thể về nil
	updates := map[string]interface{}{
		"name":         category.Name,
		"billing_type": category.BillingType,
		"amount":       category.Amount,
	}
	if err := s.db.Model(&category).Updates(updates).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật loại khoản thu", err)
	}

	return &category, nil
}

// SetActive bật hoặc tắt loại khoản thu
func (s *DueCategoryService) SetActive(categoryID uint, active bool) (*models.DueCategory, error) {
	var category models.DueCategory
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy loại khoản thu", err)
	}

	category.Active = active
	if err := s.db.Model(&category).Update("active", active).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật loại khoản thu", err)
	}

	return &category, nil
}

// checkCategoryDeletable: loại đã được gán thì giữ lịch sử, chỉ tắt được
func checkCategoryDeletable(assignments int64) error {
	if assignments > 0 {
		return errors.NewAppError(errors.ErrCodeHasAssignments,
			"Loại khoản thu đã được gán, hãy tắt thay vì xóa", nil)
	}
	return nil
}

// DeleteCategory xóa loại khoản thu. Còn khoản thu nào tham chiếu thì
// từ chối để giữ lịch sử, chỉ được tắt loại đi.
func (s *DueCategoryService) DeleteCategory(categoryID uint) error {
	var category models.DueCategory
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy loại khoản thu", err)
	}

	var count int64
	if err := s.db.Model(&models.DueAssignment{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra khoản thu", err)
	}
	if err := checkCategoryDeletable(count); err != nil {
		return err
	}

	if err := s.db.Delete(&models.DueCategory{}, categoryID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể xóa loại khoản thu", err)
	}

	s.logger.Info("Đã xóa loại khoản thu %d", categoryID)
	return nil
}

// ListCategories lấy danh sách loại khoản thu của một owner
func (s *DueCategoryService) ListCategories(ownerID uint) ([]models.DueCategory, error) {
	var categories []models.DueCategory
	query := s.db.Model(&models.DueCategory{})
	if ownerID != 0 {
		query = query.Where("owner_id = ?", ownerID)
	}
	if err := query.Order("name").Find(&categories).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách loại khoản thu", err)
	}
	return categories, nil
}

// ToDueCategoryResponse chuyển model sang DTO
func ToDueCategoryResponse(c *models.DueCategory) dto.DueCategoryResponse {
	return dto.DueCategoryResponse{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Name:        c.Name,
		BillingType: c.BillingType,
		Amount:      c.Amount,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
	}
}
