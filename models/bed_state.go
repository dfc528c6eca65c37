package models

import (
	"errors"

	"qltro/constants"
)

// BedState định nghĩa interface cho các trạng thái giường.
// Occupy/Release chỉ được gọi từ luồng gán/kết thúc hợp đồng thuê,
// các chuyển đổi còn lại là thao tác tay của operator.
type BedState interface {
	Occupy(bed *Bed) error
	Release(bed *Bed) error
	Maintain(bed *Bed) error
	Block(bed *Bed) error
	Reopen(bed *Bed) error
}

// AvailableState giường trống
type AvailableState struct{}

func (s *AvailableState) Occupy(bed *Bed) error {
	bed.Status = constants.BedStatusOccupied
	return nil
}

func (s *AvailableState) Release(bed *Bed) error {
	return errors.New("bed is not occupied")
}

func (s *AvailableState) Maintain(bed *Bed) error {
	bed.Status = constants.BedStatusMaintenance
	return nil
}

func (s *AvailableState) Block(bed *Bed) error {
	bed.Status = constants.BedStatusBlocked
	return nil
}

func (s *AvailableState) Reopen(bed *Bed) error {
	return errors.New("bed already available")
}

// OccupiedState giường đang có người thuê
type OccupiedState struct{}

func (s *OccupiedState) Occupy(bed *Bed) error {
	return errors.New("bed already occupied")
}

func (s *OccupiedState) Release(bed *Bed) error {
	bed.Status = constants.BedStatusAvailable
	return nil
}

func (s *OccupiedState) Maintain(bed *Bed) error {
	return errors.New("cannot maintain occupied bed")
}

func (s *OccupiedState) Block(bed *Bed) error {
	return errors.New("cannot block occupied bed")
}

func (s *OccupiedState) Reopen(bed *Bed) error {
	return errors.New("cannot reopen occupied bed")
}

// MaintenanceState giường đang bảo trì
type MaintenanceState struct{}

func (s *MaintenanceState) Occupy(bed *Bed) error {
	return errors.New("bed under maintenance")
}

func (s *MaintenanceState) Release(bed *Bed) error {
	return errors.New("bed is not occupied")
}

func (s *MaintenanceState) Maintain(bed *Bed) error {
	return errors.New("bed already under maintenance")
}

func (s *MaintenanceState) Block(bed *Bed) error {
	return errors.New("cannot block bed under maintenance")
}

func (s *MaintenanceState) Reopen(bed *Bed) error {
	bed.Status = constants.BedStatusAvailable
	return nil
}

// BlockedState giường bị khóa
type BlockedState struct{}

func (s *BlockedState) Occupy(bed *Bed) error {
	return errors.New("bed is blocked")
}

func (s *BlockedState) Release(bed *Bed) error {
	return errors.New("bed is not occupied")
}

func (s *BlockedState) Maintain(bed *Bed) error {
	return errors.New("cannot maintain blocked bed")
}

func (s *BlockedState) Block(bed *Bed) error {
	return errors.New("bed already blocked")
}

func (s *BlockedState) Reopen(bed *Bed) error {
	bed.Status = constants.BedStatusAvailable
	return nil
}

// GetBedState trả về state tương ứng với trạng thái giường
func GetBedState(status int) BedState {
	switch status {
	case constants.BedStatusAvailable:
		return &AvailableState{}
	case constants.BedStatusOccupied:
		return &OccupiedState{}
	case constants.BedStatusMaintenance:
		return &MaintenanceState{}
	case constants.BedStatusBlocked:
		return &BlockedState{}
	default:
		return &AvailableState{}
	}
}
