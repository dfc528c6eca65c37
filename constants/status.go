package constants

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// User role
const (
	RoleAdmin  = 1
	RoleOwner  = 2
	RoleTenant = 3
)

// Bed status
const (
	BedStatusAvailable   = 0
	BedStatusOccupied    = 1
	BedStatusMaintenance = 2
	BedStatusBlocked     = 3
)

// Room derived status
const (
	RoomStatusAvailable         = 0
	RoomStatusPartiallyOccupied = 1
	RoomStatusFullyOccupied     = 2
	RoomStatusUnderMaintenance  = 3
	RoomStatusBlocked           = 4
)

// Room override (0 = không override, trạng thái tính từ giường)
const (
	RoomOverrideNone        = 0
	RoomOverrideMaintenance = 3
	RoomOverrideBlocked     = 4
)

// Tenancy status
const (
	TenancyStatusPendingApproval = 0
	TenancyStatusActive          = 1
	TenancyStatusNoticePeriod    = 2
	TenancyStatusTerminated      = 3
)

// Billing type
const (
	BillingTypeFixed    = 0
	BillingTypeVariable = 1
)

// Due assignment status
const (
	DueStatusPending = 0
	DueStatusPaid    = 1
	DueStatusOverdue = 2
)
