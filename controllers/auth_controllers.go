package controllers

import (
	"qltro/dto"
	"qltro/errors"
	"qltro/models"
	"qltro/response"
	"qltro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthController xử lý đăng ký / đăng nhập / profile
type AuthController struct {
	DB *gorm.DB
}

// NewAuthController tạo instance mới của AuthController
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// respondError map lỗi service sang response
func respondError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		response.AppError(c, appErr)
		return
	}
	response.ServerError(c)
}

// RegisterUser đăng ký tài khoản
func (ctrl *AuthController) RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := services.CreateUser(models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Status:      user.Status,
	})
}

// Login đăng nhập bằng email hoặc số điện thoại
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	resp, err := services.Authenticate(req.Identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, resp)
}

// GetProfile lấy thông tin tài khoản từ token
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := ctrl.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Status:      user.Status,
	})
}

// currentActor lấy thông tin người thao tác từ context
func currentActor(c *gin.Context) dto.ActorID {
	actor := dto.ActorID{}
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			actor.UserID = id
		}
	}
	if v, ok := c.Get("userRole"); ok {
		if role, ok := v.(int); ok {
			actor.Role = role
		}
	}
	return actor
}
