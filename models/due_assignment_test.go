package models

import (
	"testing"
	"time"

	"qltro/constants"

	"github.com/stretchr/testify/assert"
)

func TestShouldMarkOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	pendingPast := &DueAssignment{Status: constants.DueStatusPending, DueDate: now.AddDate(0, 0, -1)}
	assert.True(t, pendingPast.ShouldMarkOverdue(now))

	pendingFuture := &DueAssignment{Status: constants.DueStatusPending, DueDate: now.AddDate(0, 0, 1)}
	assert.False(t, pendingFuture.ShouldMarkOverdue(now))

	// Khoản đã thanh toán không bao giờ bị chuyển sang quá hạn
	paidPast := &DueAssignment{Status: constants.DueStatusPaid, DueDate: now.AddDate(0, 0, -10)}
	assert.False(t, paidPast.ShouldMarkOverdue(now))

	overduePast := &DueAssignment{Status: constants.DueStatusOverdue, DueDate: now.AddDate(0, 0, -10)}
	assert.False(t, overduePast.ShouldMarkOverdue(now))
}

func TestIsPaid(t *testing.T) {
	assert.True(t, (&DueAssignment{Status: constants.DueStatusPaid}).IsPaid())
	assert.False(t, (&DueAssignment{Status: constants.DueStatusPending}).IsPaid())
	assert.False(t, (&DueAssignment{Status: constants.DueStatusOverdue}).IsPaid())
}

func TestShouldMarkOverdueNotOnDueDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Đến hạn hôm nay (dù giờ sớm hơn) vẫn chưa quá hạn
	dueToday := &DueAssignment{Status: constants.DueStatusPending, DueDate: time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)}
	assert.False(t, dueToday.ShouldMarkOverdue(now))
}
