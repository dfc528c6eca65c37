package builders

import (
	"testing"
	"time"

	"qltro/constants"

	"github.com/stretchr/testify/assert"
)

func TestTenancyBuilderBuildsFullRecord(t *testing.T) {
	moveIn := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tenancy := NewTenancyBuilder().
		WithTenant(7).
		WithBed(3, 12).
		WithStatus(constants.TenancyStatusPendingApproval).
		WithMoveIn(moveIn).
		WithFinancials(1500000, 3000000).
		WithTerms(6, 30, 5).
		Build()

	assert.Equal(t, uint(7), tenancy.TenantID)
	assert.Equal(t, uint(3), tenancy.RoomID)
	assert.Equal(t, uint(12), tenancy.BedID)
	assert.Equal(t, constants.TenancyStatusPendingApproval, tenancy.Status)
	assert.Equal(t, moveIn, tenancy.MoveInDate)
	assert.Equal(t, 1500000, tenancy.Price)
	assert.Equal(t, 3000000, tenancy.Deposit)
	assert.Equal(t, 6, tenancy.AgreementMonths)
	assert.Equal(t, 30, tenancy.NoticeDays)
	assert.Equal(t, 5, tenancy.RentDueDay)
}

func TestTenancyBuilderDefaults(t *testing.T) {
	tenancy := NewTenancyBuilder().WithTenant(1).Build()

	assert.Equal(t, constants.TenancyStatusPendingApproval, tenancy.Status)
	assert.Zero(t, tenancy.BedID)
}
