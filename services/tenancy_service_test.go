package services

import (
	"testing"

	"qltro/constants"
	"qltro/errors"
	"qltro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeRoom() *models.Room {
	return &models.Room{RoomId: 1, Capacity: 2, Active: true}
}

func TestCheckBindTargetAcceptsAvailableBed(t *testing.T) {
	bed := &models.Bed{BedId: 1, RoomID: 1, Status: constants.BedStatusAvailable}

	assert.NoError(t, checkBindTarget(activeRoom(), bed, nil))
}

func TestSecondBindRejectedAfterBedOccupied(t *testing.T) {
	bed := &models.Bed{BedId: 1, RoomID: 1, Status: constants.BedStatusAvailable}

	// Gán lần đầu: giường trống, được nhận và chuyển sang có người
	require.NoError(t, checkBindTarget(activeRoom(), bed, nil))
	require.NoError(t, models.GetBedState(bed.Status).Occupy(bed))

	// Gán lần hai trên cùng giường phải bị từ chối
	err := checkBindTarget(activeRoom(), bed, nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBedNotAvailable))
}

func TestBindRejectedWhenLiveTenancyExists(t *testing.T) {
	// Dữ liệu lệch: status giường báo trống nhưng còn hợp đồng sống
	bed := &models.Bed{BedId: 1, RoomID: 1, Status: constants.BedStatusAvailable}
	existing := &models.Tenancy{TenancyId: 9, BedID: 1, Status: constants.TenancyStatusActive}

	err := checkBindTarget(activeRoom(), bed, existing)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBedNotAvailable))
}

func TestBindRejectedWhenRoomNotAccepting(t *testing.T) {
	bed := &models.Bed{BedId: 1, RoomID: 1, Status: constants.BedStatusAvailable}

	inactive := activeRoom()
	inactive.Active = false
	assert.True(t, errors.HasCode(checkBindTarget(inactive, bed, nil), errors.ErrCodeRoomInactive))

	maintained := activeRoom()
	maintained.Override = constants.RoomOverrideMaintenance
	assert.True(t, errors.HasCode(checkBindTarget(maintained, bed, nil), errors.ErrCodeRoomInactive))

	blocked := activeRoom()
	blocked.Override = constants.RoomOverrideBlocked
	assert.True(t, errors.HasCode(checkBindTarget(blocked, bed, nil), errors.ErrCodeRoomInactive))
}

func TestTerminationReleasesBed(t *testing.T) {
	bed := &models.Bed{BedId: 1, Status: constants.BedStatusOccupied}

	require.NoError(t, releaseTerminatedBed(bed))
	assert.Equal(t, constants.BedStatusAvailable, bed.Status)
}

func TestReleaseWithoutOccupiedBedIsConsistencyViolation(t *testing.T) {
	// Chiều ngược của bất biến: hợp đồng sống thì giường phải đang có người
	for _, status := range []int{constants.BedStatusAvailable, constants.BedStatusMaintenance, constants.BedStatusBlocked} {
		bed := &models.Bed{BedId: 1, Status: status}

		err := releaseTerminatedBed(bed)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeConsistency))
		assert.Equal(t, status, bed.Status)
	}
}
