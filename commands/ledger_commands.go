package commands

import (
	"qltro/models"

	"gorm.io/gorm"
)

// LedgerCommand định nghĩa interface cho các command
type LedgerCommand interface {
	Execute() error
}

// CreateTenancyCommand command để tạo hợp đồng thuê mới
type CreateTenancyCommand struct {
	tenancy *models.Tenancy
	db      *gorm.DB
}

func NewCreateTenancyCommand(tenancy *models.Tenancy, db *gorm.DB) *CreateTenancyCommand {
	return &CreateTenancyCommand{
		tenancy: tenancy,
		db:      db,
	}
}

func (c *CreateTenancyCommand) Execute() error {
	return c.db.Create(c.tenancy).Error
}

// UpdateTenancyCommand command để lưu trạng thái hợp đồng
type UpdateTenancyCommand struct {
	tenancy *models.Tenancy
	db      *gorm.DB
}

func NewUpdateTenancyCommand(tenancy *models.Tenancy, db *gorm.DB) *UpdateTenancyCommand {
	return &UpdateTenancyCommand{
		tenancy: tenancy,
		db:      db,
	}
}

func (c *UpdateTenancyCommand) Execute() error {
	return c.db.Save(c.tenancy).Error
}

// UpdateBedCommand command để cập nhật giường
type UpdateBedCommand struct {
	bed *models.Bed
	db  *gorm.DB
}

func NewUpdateBedCommand(bed *models.Bed, db *gorm.DB) *UpdateBedCommand {
	return &UpdateBedCommand{
		bed: bed,
		db:  db,
	}
}

func (c *UpdateBedCommand) Execute() error {
	return c.db.Save(c.bed).Error
}
