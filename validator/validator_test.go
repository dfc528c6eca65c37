package validator

import (
	"testing"
	"time"

	"qltro/constants"
	"qltro/dto"
	"qltro/errors"
	"qltro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidateDueCategoryFixedRequiresAmount(t *testing.T) {
	category := &models.DueCategory{Name: "Phí bảo trì", BillingType: constants.BillingTypeFixed}

	err := ValidateDueCategory(category)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingAmount))
}

func TestValidateDueCategoryFixedRejectsNonPositiveAmount(t *testing.T) {
	category := &models.DueCategory{Name: "Phí bảo trì", BillingType: constants.BillingTypeFixed, Amount: intPtr(0)}

	err := ValidateDueCategory(category)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingAmount))
}

func TestValidateDueCategoryVariableRejectsStoredAmount(t *testing.T) {
	category := &models.DueCategory{Name: "Điện nước", BillingType: constants.BillingTypeVariable, Amount: intPtr(100)}

	err := ValidateDueCategory(category)

	assert.Error(t, err)
}

func TestValidateDueCategoryValid(t *testing.T) {
	fixed := &models.DueCategory{Name: "Phí bảo trì", BillingType: constants.BillingTypeFixed, Amount: intPtr(200000)}
	assert.NoError(t, ValidateDueCategory(fixed))

	variable := &models.DueCategory{Name: "Điện nước", BillingType: constants.BillingTypeVariable}
	assert.NoError(t, ValidateDueCategory(variable))
}

func TestValidateDueDateRejectsPast(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	err := ValidateDueDate(now.AddDate(0, 0, -1), now)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDueDate))
}

func TestValidateDueDateAcceptsTodayAndFuture(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

	// Đầu ngày hôm nay vẫn hợp lệ dù giờ hiện tại đã muộn hơn
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateDueDate(today, now))
	assert.NoError(t, ValidateDueDate(now.AddDate(0, 0, 1), now))
}

func TestValidateBindTermsBadDate(t *testing.T) {
	req := &dto.BindTenantRequest{TenantID: 1, BedID: 1, MoveInDate: "2025-06-15"}

	err := ValidateBindTerms(req)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTerms))
}

func TestValidateBindTermsRejectsNonPositivePrice(t *testing.T) {
	req := &dto.BindTenantRequest{TenantID: 1, BedID: 1, MoveInDate: "15/06/2025", Price: intPtr(0)}

	err := ValidateBindTerms(req)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTerms))
}

func TestValidateBindTermsValid(t *testing.T) {
	req := &dto.BindTenantRequest{
		TenantID:        1,
		BedID:           2,
		MoveInDate:      "15/06/2025",
		Price:           intPtr(1500000),
		Deposit:         intPtr(3000000),
		AgreementMonths: 6,
		NoticeDays:      30,
		RentDueDay:      5,
	}

	assert.NoError(t, ValidateBindTerms(req))
}

func TestValidateBedRules(t *testing.T) {
	bed := &models.Bed{RoomID: 1, BedNo: "A1", Price: 1200000, Condition: 3}
	assert.NoError(t, ValidateBed(bed))

	noPrice := &models.Bed{RoomID: 1, BedNo: "A1", Condition: 3}
	assert.Error(t, ValidateBed(noPrice))

	badCondition := &models.Bed{RoomID: 1, BedNo: "A1", Price: 1200000, Condition: 6}
	assert.Error(t, ValidateBed(badCondition))
}

func TestValidateRoomRules(t *testing.T) {
	room := &models.Room{PropertyID: 1, RoomNo: "101", Capacity: 4}
	assert.NoError(t, ValidateRoom(room))

	zeroCapacity := &models.Room{PropertyID: 1, RoomNo: "101", Capacity: 0}
	assert.Error(t, ValidateRoom(zeroCapacity))

	noNumber := &models.Room{PropertyID: 1, Capacity: 2}
	assert.Error(t, ValidateRoom(noNumber))
}

func TestValidateStructReadsBindingTags(t *testing.T) {
	// Thiếu trường required phải bị chặn cả ở luồng không đi qua gin
	missing := dto.BindTenantRequest{TenantID: 1, MoveInDate: "15/06/2025"}
	err := ValidateStruct(&missing)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	valid := dto.BindTenantRequest{TenantID: 1, BedID: 2, MoveInDate: "15/06/2025"}
	assert.NoError(t, ValidateStruct(&valid))
}
