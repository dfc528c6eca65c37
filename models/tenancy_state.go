package models

import (
	"errors"

	"qltro/constants"
)

// TenancyState định nghĩa interface cho các trạng thái hợp đồng thuê
type TenancyState interface {
	Approve(t *Tenancy) error
	StartNotice(t *Tenancy) error
	Terminate(t *Tenancy) error
}

// PendingApprovalState hồ sơ thuê đang chờ duyệt
type PendingApprovalState struct{}

func (s *PendingApprovalState) Approve(t *Tenancy) error {
	t.Status = constants.TenancyStatusActive
	return nil
}

func (s *PendingApprovalState) StartNotice(t *Tenancy) error {
	return errors.New("tenancy not active yet")
}

// Terminate từ chờ duyệt = từ chối hồ sơ
func (s *PendingApprovalState) Terminate(t *Tenancy) error {
	t.Status = constants.TenancyStatusTerminated
	return nil
}

// ActiveTenancyState hợp đồng đang hiệu lực
type ActiveTenancyState struct{}

func (s *ActiveTenancyState) Approve(t *Tenancy) error {
	return errors.New("tenancy already active")
}

func (s *ActiveTenancyState) StartNotice(t *Tenancy) error {
	t.Status = constants.TenancyStatusNoticePeriod
	return nil
}

func (s *ActiveTenancyState) Terminate(t *Tenancy) error {
	t.Status = constants.TenancyStatusTerminated
	return nil
}

// NoticePeriodState đang trong thời gian báo trước
type NoticePeriodState struct{}

func (s *NoticePeriodState) Approve(t *Tenancy) error {
	return errors.New("cannot approve tenancy in notice period")
}

func (s *NoticePeriodState) StartNotice(t *Tenancy) error {
	return errors.New("tenancy already in notice period")
}

func (s *NoticePeriodState) Terminate(t *Tenancy) error {
	t.Status = constants.TenancyStatusTerminated
	return nil
}

// TerminatedState hợp đồng đã kết thúc
type TerminatedState struct{}

func (s *TerminatedState) Approve(t *Tenancy) error {
	return errors.New("tenancy already terminated")
}

func (s *TerminatedState) StartNotice(t *Tenancy) error {
	return errors.New("tenancy already terminated")
}

func (s *TerminatedState) Terminate(t *Tenancy) error {
	return errors.New("tenancy already terminated")
}

// GetTenancyState trả về state tương ứng với trạng thái hợp đồng
func GetTenancyState(status int) TenancyState {
	switch status {
	case constants.TenancyStatusPendingApproval:
		return &PendingApprovalState{}
	case constants.TenancyStatusActive:
		return &ActiveTenancyState{}
	case constants.TenancyStatusNoticePeriod:
		return &NoticePeriodState{}
	case constants.TenancyStatusTerminated:
		return &TerminatedState{}
	default:
		return &PendingApprovalState{}
	}
}

// IsLiveTenancyStatus kiểm tra trạng thái còn chiếm giường không
func IsLiveTenancyStatus(status int) bool {
	switch status {
	case constants.TenancyStatusPendingApproval,
		constants.TenancyStatusActive,
		constants.TenancyStatusNoticePeriod:
		return true
	}
	return false
}
