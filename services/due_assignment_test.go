package services

import (
	"testing"
	"time"

	"qltro/constants"
	"qltro/errors"
	"qltro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestResolveAmountFixedUsesCategoryAmount(t *testing.T) {
	category := &models.DueCategory{BillingType: constants.BillingTypeFixed, Amount: intPtr(200000)}

	amount, err := ResolveAmount(category, nil)

	require.NoError(t, err)
	assert.Equal(t, 200000, amount)
}

func TestResolveAmountFixedMatchingSuppliedOK(t *testing.T) {
	category := &models.DueCategory{BillingType: constants.BillingTypeFixed, Amount: intPtr(200000)}

	amount, err := ResolveAmount(category, intPtr(200000))

	require.NoError(t, err)
	assert.Equal(t, 200000, amount)
}

func TestResolveAmountFixedMismatchRejected(t *testing.T) {
	category := &models.DueCategory{BillingType: constants.BillingTypeFixed, Amount: intPtr(200000)}

	_, err := ResolveAmount(category, intPtr(150000))

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAmountMismatch))
}

func TestResolveAmountVariableRequiresAmount(t *testing.T) {
	category := &models.DueCategory{BillingType: constants.BillingTypeVariable}

	_, err := ResolveAmount(category, nil)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingAmount))
}

func TestResolveAmountVariableRejectsNonPositive(t *testing.T) {
	category := &models.DueCategory{BillingType: constants.BillingTypeVariable}

	_, err := ResolveAmount(category, intPtr(0))

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingAmount))
}

func TestResolveAmountVariableSupplied(t *testing.T) {
	category := &models.DueCategory{BillingType: constants.BillingTypeVariable}

	amount, err := ResolveAmount(category, intPtr(1500))

	require.NoError(t, err)
	assert.Equal(t, 1500, amount)
}

func TestResolveAmountFixedWithoutStoredAmountIsConsistencyError(t *testing.T) {
	// Dữ liệu lệch: loại cố định nhưng không có số tiền lưu sẵn
	category := &models.DueCategory{BillingType: constants.BillingTypeFixed}

	_, err := ResolveAmount(category, intPtr(100))

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeConsistency))
}

func TestOverdueCutoffIsStartOfDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	cutoff := overdueCutoff(now)

	// Khoản đến hạn hôm nay chưa bị coi là quá hạn
	dueToday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, dueToday.Before(cutoff))

	// Đến hạn hôm qua, kể cả cuối ngày, thì đã quá hạn
	dueYesterday := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	assert.True(t, dueYesterday.Before(cutoff))
}
