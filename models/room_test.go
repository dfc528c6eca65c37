package models

import (
	"testing"

	"qltro/constants"

	"github.com/stretchr/testify/assert"
)

func roomWithBeds(capacity int, bedStatuses ...int) *Room {
	room := &Room{RoomId: 1, Capacity: capacity, Active: true}
	for i, status := range bedStatuses {
		room.Beds = append(room.Beds, Bed{BedId: uint(i + 1), RoomID: 1, Status: status})
	}
	return room
}

func TestRoomDerivedStatusEmpty(t *testing.T) {
	room := roomWithBeds(2)
	assert.Equal(t, constants.RoomStatusAvailable, room.DerivedStatus())
}

func TestRoomDerivedStatusPartiallyOccupied(t *testing.T) {
	room := roomWithBeds(2, constants.BedStatusOccupied, constants.BedStatusAvailable)
	assert.Equal(t, constants.RoomStatusPartiallyOccupied, room.DerivedStatus())
	assert.Equal(t, 1, room.OccupiedCount())
}

func TestRoomDerivedStatusFullyOccupied(t *testing.T) {
	room := roomWithBeds(2, constants.BedStatusOccupied, constants.BedStatusOccupied)
	assert.Equal(t, constants.RoomStatusFullyOccupied, room.DerivedStatus())
}

func TestRoomDerivedStatusNotFullWhenBedsBelowCapacity(t *testing.T) {
	// Mọi giường đều có người nhưng phòng chưa đặt đủ giường theo sức chứa
	room := roomWithBeds(3, constants.BedStatusOccupied, constants.BedStatusOccupied)
	assert.Equal(t, constants.RoomStatusPartiallyOccupied, room.DerivedStatus())
}

func TestRoomOverrideWinsOverDerived(t *testing.T) {
	room := roomWithBeds(2, constants.BedStatusOccupied, constants.BedStatusOccupied)
	room.Override = constants.RoomOverrideMaintenance
	assert.Equal(t, constants.RoomStatusUnderMaintenance, room.DerivedStatus())

	room.Override = constants.RoomOverrideBlocked
	assert.Equal(t, constants.RoomStatusBlocked, room.DerivedStatus())

	room.Override = constants.RoomOverrideNone
	assert.Equal(t, constants.RoomStatusFullyOccupied, room.DerivedStatus())
}

func TestRoomCanAddBedUpToCapacity(t *testing.T) {
	room := roomWithBeds(2)
	assert.True(t, room.CanAddBed())

	room.Beds = append(room.Beds, Bed{BedId: 1})
	assert.True(t, room.CanAddBed())

	room.Beds = append(room.Beds, Bed{BedId: 2})
	assert.False(t, room.CanAddBed())
}

func TestRoomCanResize(t *testing.T) {
	room := roomWithBeds(4, constants.BedStatusAvailable, constants.BedStatusOccupied)

	assert.True(t, room.CanResize(2))
	assert.True(t, room.CanResize(3))
	assert.False(t, room.CanResize(1))
}

func TestRoomValidateCapacity(t *testing.T) {
	room := &Room{Capacity: 0}
	assert.Error(t, room.ValidateCapacity())

	room.Capacity = -1
	assert.Error(t, room.ValidateCapacity())

	room.Capacity = 1
	assert.NoError(t, room.ValidateCapacity())
}

func TestRoomValidateOverride(t *testing.T) {
	room := &Room{Override: constants.RoomOverrideNone}
	assert.NoError(t, room.ValidateOverride())

	room.Override = constants.RoomOverrideMaintenance
	assert.NoError(t, room.ValidateOverride())

	room.Override = 7
	assert.Error(t, room.ValidateOverride())
}
