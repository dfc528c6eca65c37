package models

import (
	"testing"

	"qltro/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBedStateOccupyFromAvailable(t *testing.T) {
	bed := &Bed{Status: constants.BedStatusAvailable}

	err := GetBedState(bed.Status).Occupy(bed)

	require.NoError(t, err)
	assert.Equal(t, constants.BedStatusOccupied, bed.Status)
}

func TestBedStateOccupyTwiceFails(t *testing.T) {
	bed := &Bed{Status: constants.BedStatusAvailable}
	require.NoError(t, GetBedState(bed.Status).Occupy(bed))

	err := GetBedState(bed.Status).Occupy(bed)

	assert.Error(t, err)
	assert.Equal(t, constants.BedStatusOccupied, bed.Status)
}

func TestBedStateReleaseCycle(t *testing.T) {
	bed := &Bed{Status: constants.BedStatusOccupied}

	err := GetBedState(bed.Status).Release(bed)

	require.NoError(t, err)
	assert.Equal(t, constants.BedStatusAvailable, bed.Status)
}

func TestBedStateReleaseWhenNotOccupied(t *testing.T) {
	for _, status := range []int{constants.BedStatusAvailable, constants.BedStatusMaintenance, constants.BedStatusBlocked} {
		bed := &Bed{Status: status}
		err := GetBedState(bed.Status).Release(bed)
		assert.Error(t, err)
		assert.Equal(t, status, bed.Status)
	}
}

func TestBedStateMaintenanceBranch(t *testing.T) {
	bed := &Bed{Status: constants.BedStatusAvailable}

	require.NoError(t, GetBedState(bed.Status).Maintain(bed))
	assert.Equal(t, constants.BedStatusMaintenance, bed.Status)

	require.NoError(t, GetBedState(bed.Status).Reopen(bed))
	assert.Equal(t, constants.BedStatusAvailable, bed.Status)
}

func TestBedStateBlockedBranch(t *testing.T) {
	bed := &Bed{Status: constants.BedStatusAvailable}

	require.NoError(t, GetBedState(bed.Status).Block(bed))
	assert.Equal(t, constants.BedStatusBlocked, bed.Status)

	require.NoError(t, GetBedState(bed.Status).Reopen(bed))
	assert.Equal(t, constants.BedStatusAvailable, bed.Status)
}

func TestBedStateOccupiedRejectsManualMoves(t *testing.T) {
	bed := &Bed{Status: constants.BedStatusOccupied}
	state := GetBedState(bed.Status)

	assert.Error(t, state.Maintain(bed))
	assert.Error(t, state.Block(bed))
	assert.Error(t, state.Reopen(bed))
	assert.Equal(t, constants.BedStatusOccupied, bed.Status)
}

func TestBedStateMaintenanceRejectsOccupy(t *testing.T) {
	bed := &Bed{Status: constants.BedStatusMaintenance}

	assert.Error(t, GetBedState(bed.Status).Occupy(bed))
	assert.Equal(t, constants.BedStatusMaintenance, bed.Status)
}

func TestBedStateBlockedRejectsOccupy(t *testing.T) {
	bed := &Bed{Status: constants.BedStatusBlocked}

	assert.Error(t, GetBedState(bed.Status).Occupy(bed))
	assert.Equal(t, constants.BedStatusBlocked, bed.Status)
}
