package services

import (
	"testing"

	"qltro/constants"
	"qltro/errors"
	"qltro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryWithAssignmentsCannotBeDeleted(t *testing.T) {
	err := checkCategoryDeletable(1)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeHasAssignments))
}

func TestCategoryWithoutAssignmentsDeletable(t *testing.T) {
	assert.NoError(t, checkCategoryDeletable(0))
}

func TestInactiveCategoryRejectsNewAssignments(t *testing.T) {
	// Loại đã tắt không nhận khoản thu mới, dù hợp đồng còn hiệu lực
	category := &models.DueCategory{ID: 1, Active: false}
	tenancy := &models.Tenancy{TenancyId: 1, Status: constants.TenancyStatusActive}

	err := checkAssignTarget(category, tenancy)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeCategoryInactive))
}

func TestTerminatedTenancyRejectsNewAssignments(t *testing.T) {
	category := &models.DueCategory{ID: 1, Active: true}
	tenancy := &models.Tenancy{TenancyId: 1, Status: constants.TenancyStatusTerminated}

	err := checkAssignTarget(category, tenancy)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeTenancyInactive))
}

func TestLiveTenancyWithActiveCategoryAssignable(t *testing.T) {
	category := &models.DueCategory{ID: 1, Active: true}
	for _, status := range []int{constants.TenancyStatusPendingApproval, constants.TenancyStatusActive, constants.TenancyStatusNoticePeriod} {
		tenancy := &models.Tenancy{TenancyId: 1, Status: status}
		assert.NoError(t, checkAssignTarget(category, tenancy))
	}
}
