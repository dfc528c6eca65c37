package validator

import (
	"regexp"
	"time"

	"qltro/constants"
	"qltro/dto"
	"qltro/errors"
	"qltro/models"

	v10 "github.com/go-playground/validator/v10"
)

var validate = v10.New()

func init() {
	// DTO dùng tag binding (theo gin), cho validator đọc cùng tag
	validate.SetTagName("binding")
}

// DateLayout là định dạng ngày dùng cho request
const DateLayout = "02/01/2006"

// ValidateStruct chạy các rule binding trên struct request,
// dùng cho các luồng gọi service không đi qua gin (job, test)
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}
	return nil
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < constants.RoleAdmin || user.Role > constants.RoleTenant {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateRoom validate thông tin phòng lúc tạo
func ValidateRoom(room *models.Room) error {
	if room.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID khu trọ không được để trống", nil)
	}

	if room.RoomNo == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số phòng không được để trống", nil)
	}

	if room.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải là số dương", nil)
	}

	if room.BaseRent != nil && *room.BaseRent < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá thuê không được âm", nil)
	}

	return nil
}

// ValidateBed validate thông tin giường lúc thêm
func ValidateBed(bed *models.Bed) error {
	if bed.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	if bed.BedNo == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số giường không được để trống", nil)
	}

	if bed.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá thuê giường phải là số dương", nil)
	}

	if bed.Deposit < 0 || bed.MaintenanceCharge < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Tiền cọc và phí bảo trì không được âm", nil)
	}

	if bed.Condition < 1 || bed.Condition > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Đánh giá tình trạng giường phải từ 1 đến 5", nil)
	}

	return nil
}

// ValidateBindTerms validate điều khoản thuê trước khi gán.
// Thiếu thông tin tài chính bắt buộc trả về INVALID_TERMS.
func ValidateBindTerms(req *dto.BindTenantRequest) error {
	if _, err := time.Parse(DateLayout, req.MoveInDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidTerms, "Ngày vào ở không hợp lệ", err)
	}

	if req.Price != nil && *req.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidTerms, "Giá thuê phải là số dương", nil)
	}

	if req.Deposit != nil && *req.Deposit < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidTerms, "Tiền cọc không được âm", nil)
	}

	if req.AgreementMonths < 0 || req.NoticeDays < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidTerms, "Thời hạn hợp đồng không hợp lệ", nil)
	}

	if req.RentDueDay < 0 || req.RentDueDay > 28 {
		return errors.NewAppError(errors.ErrCodeInvalidTerms, "Ngày thu tiền phải từ 1 đến 28", nil)
	}

	return nil
}

// ValidateDueCategory validate loại khoản thu theo billing type
func ValidateDueCategory(category *models.DueCategory) error {
	if category.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khoản thu không được để trống", nil)
	}

	switch category.BillingType {
	case constants.BillingTypeFixed:
		if category.Amount == nil || *category.Amount <= 0 {
			return errors.NewAppError(errors.ErrCodeMissingAmount, "Khoản thu cố định phải có số tiền dương", nil)
		}
	case constants.BillingTypeVariable:
		if category.Amount != nil {
			return errors.NewAppError(errors.ErrCodeValidation, "Khoản thu biến đổi không lưu số tiền trên loại", nil)
		}
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Loại khoản thu không hợp lệ", nil)
	}

	return nil
}

// ValidateDueDate kiểm tra ngày đến hạn không nằm trong quá khứ
func ValidateDueDate(dueDate, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dueDate.Before(today) {
		return errors.NewAppError(errors.ErrCodeInvalidDueDate, "Ngày đến hạn không được nhỏ hơn ngày hiện tại", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
