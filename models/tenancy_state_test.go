package models

import (
	"testing"

	"qltro/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenancyFullLifecycle(t *testing.T) {
	tenancy := &Tenancy{Status: constants.TenancyStatusPendingApproval}

	require.NoError(t, GetTenancyState(tenancy.Status).Approve(tenancy))
	assert.Equal(t, constants.TenancyStatusActive, tenancy.Status)

	require.NoError(t, GetTenancyState(tenancy.Status).StartNotice(tenancy))
	assert.Equal(t, constants.TenancyStatusNoticePeriod, tenancy.Status)

	require.NoError(t, GetTenancyState(tenancy.Status).Terminate(tenancy))
	assert.Equal(t, constants.TenancyStatusTerminated, tenancy.Status)
}

func TestTenancyRejectApplication(t *testing.T) {
	// Hồ sơ chờ duyệt bị từ chối thẳng sang kết thúc
	tenancy := &Tenancy{Status: constants.TenancyStatusPendingApproval}

	require.NoError(t, GetTenancyState(tenancy.Status).Terminate(tenancy))
	assert.Equal(t, constants.TenancyStatusTerminated, tenancy.Status)
}

func TestTenancyTerminateFromActive(t *testing.T) {
	tenancy := &Tenancy{Status: constants.TenancyStatusActive}

	require.NoError(t, GetTenancyState(tenancy.Status).Terminate(tenancy))
	assert.Equal(t, constants.TenancyStatusTerminated, tenancy.Status)
}

func TestTenancyBackwardTransitionsRejected(t *testing.T) {
	active := &Tenancy{Status: constants.TenancyStatusActive}
	assert.Error(t, GetTenancyState(active.Status).Approve(active))

	notice := &Tenancy{Status: constants.TenancyStatusNoticePeriod}
	assert.Error(t, GetTenancyState(notice.Status).Approve(notice))
	assert.Error(t, GetTenancyState(notice.Status).StartNotice(notice))
}

func TestTenancyNoticeBeforeApprovalRejected(t *testing.T) {
	tenancy := &Tenancy{Status: constants.TenancyStatusPendingApproval}

	assert.Error(t, GetTenancyState(tenancy.Status).StartNotice(tenancy))
	assert.Equal(t, constants.TenancyStatusPendingApproval, tenancy.Status)
}

func TestTenancyTerminatedIsFinal(t *testing.T) {
	tenancy := &Tenancy{Status: constants.TenancyStatusTerminated}
	state := GetTenancyState(tenancy.Status)

	assert.Error(t, state.Approve(tenancy))
	assert.Error(t, state.StartNotice(tenancy))
	assert.Error(t, state.Terminate(tenancy))
}

func TestIsLiveTenancyStatus(t *testing.T) {
	assert.True(t, IsLiveTenancyStatus(constants.TenancyStatusPendingApproval))
	assert.True(t, IsLiveTenancyStatus(constants.TenancyStatusActive))
	assert.True(t, IsLiveTenancyStatus(constants.TenancyStatusNoticePeriod))
	assert.False(t, IsLiveTenancyStatus(constants.TenancyStatusTerminated))
}
