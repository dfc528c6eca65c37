package services

import (
	"testing"

	"qltro/constants"
	"qltro/errors"
	"qltro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveBedBlockedWhileOccupied(t *testing.T) {
	bed := &models.Bed{BedId: 1, Status: constants.BedStatusOccupied}

	err := checkBedRemovable(bed, 1)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBedOccupied))
}

func TestRemoveBedBlockedByLiveTenancyEvenIfStatusAvailable(t *testing.T) {
	// Status giường lệch với dữ liệu hợp đồng vẫn không được xóa
	bed := &models.Bed{BedId: 1, Status: constants.BedStatusAvailable}

	err := checkBedRemovable(bed, 1)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBedOccupied))
}

func TestRemoveBedAllowedAfterTermination(t *testing.T) {
	bed := &models.Bed{BedId: 1, Status: constants.BedStatusOccupied}
	require.Error(t, checkBedRemovable(bed, 1))

	// Kết thúc hợp đồng trả giường về trống, sau đó xóa được
	require.NoError(t, releaseTerminatedBed(bed))
	assert.NoError(t, checkBedRemovable(bed, 0))
}

func TestRemoveBedAllowedForManualStates(t *testing.T) {
	for _, status := range []int{constants.BedStatusAvailable, constants.BedStatusMaintenance, constants.BedStatusBlocked} {
		bed := &models.Bed{BedId: 1, Status: status}
		assert.NoError(t, checkBedRemovable(bed, 0))
	}
}
