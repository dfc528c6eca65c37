package builders

import (
	"time"

	"qltro/models"
)

// TenancyBuilder giúp tạo hợp đồng thuê theo từng bước
type TenancyBuilder struct {
	tenancy *models.Tenancy
}

// NewTenancyBuilder tạo instance mới của TenancyBuilder
func NewTenancyBuilder() *TenancyBuilder {
	return &TenancyBuilder{
		tenancy: &models.Tenancy{},
	}
}

// WithTenant thêm thông tin người thuê
func (b *TenancyBuilder) WithTenant(tenantID uint) *TenancyBuilder {
	b.tenancy.TenantID = tenantID
	return b
}

// WithBed thêm thông tin giường và phòng
func (b *TenancyBuilder) WithBed(roomID, bedID uint) *TenancyBuilder {
	b.tenancy.RoomID = roomID
	b.tenancy.BedID = bedID
	return b
}

// WithStatus thêm trạng thái
func (b *TenancyBuilder) WithStatus(status int) *TenancyBuilder {
	b.tenancy.Status = status
	return b
}

// WithMoveIn thêm ngày vào ở
func (b *TenancyBuilder) WithMoveIn(moveIn time.Time) *TenancyBuilder {
	b.tenancy.MoveInDate = moveIn
	return b
}

// WithFinancials thêm giá thuê và tiền cọc
func (b *TenancyBuilder) WithFinancials(price, deposit int) *TenancyBuilder {
	b.tenancy.Price = price
	b.tenancy.Deposit = deposit
	return b
}

// WithTerms thêm thời hạn hợp đồng, báo trước và ngày thu tiền
func (b *TenancyBuilder) WithTerms(agreementMonths, noticeDays, rentDueDay int) *TenancyBuilder {
	b.tenancy.AgreementMonths = agreementMonths
	b.tenancy.NoticeDays = noticeDays
	b.tenancy.RentDueDay = rentDueDay
	return b
}

// Build tạo hợp đồng hoàn chỉnh
func (b *TenancyBuilder) Build() *models.Tenancy {
	return b.tenancy
}
