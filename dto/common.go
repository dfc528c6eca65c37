package dto

// ActorID là thông tin người thao tác lấy từ token, truyền tường minh
// vào service thay vì đọc state toàn cục
type ActorID struct {
	UserID uint
	Role   int
}

// PaginationQuery là DTO cho tham số phân trang
type PaginationQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
