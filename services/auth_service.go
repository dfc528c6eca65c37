package services

import (
	"time"

	"qltro/config"
	"qltro/constants"
	"qltro/dto"
	"qltro/errors"
	"qltro/models"
	"qltro/validator"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// GenerateToken tạo JWT cho user
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryMinutes) * time.Minute).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("JWT_SECRET")))
}

// GetUserByEmail tìm user theo email
func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return user, errors.NewAppError(errors.ErrCodeUserNotFound, "Không tìm thấy người dùng", err)
	}
	return user, nil
}

// GetUserByPhoneNumber tìm user theo số điện thoại
func GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	err := config.DB.Where("phone_number = ?", phoneNumber).First(&user).Error
	if err != nil {
		return user, errors.NewAppError(errors.ErrCodeUserNotFound, "Không tìm thấy người dùng", err)
	}
	return user, nil
}

// CreateUser tạo tài khoản mới
func CreateUser(input models.User) (models.User, error) {
	if err := validator.ValidateUser(&input); err != nil {
		return input, err
	}

	var existing models.User
	err := config.DB.Where("email = ? OR phone_number = ?", input.Email, input.PhoneNumber).First(&existing).Error
	if err == nil {
		return input, errors.NewAppError(errors.ErrCodeUserExists, "Email hoặc số điện thoại đã được đăng ký", nil)
	}
	if err != gorm.ErrRecordNotFound {
		return input, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra người dùng", err)
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return input, errors.NewAppError(errors.ErrCodeDBError, "Không thể băm mật khẩu", err)
	}
	input.Password = hashed
	input.Status = constants.UserStatusActive

	if err := config.DB.Create(&input).Error; err != nil {
		return input, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo người dùng", err)
	}

	return input, nil
}

// Authenticate kiểm tra thông tin đăng nhập và trả về token
func Authenticate(identifier, password string) (dto.LoginResponse, error) {
	var resp dto.LoginResponse

	user, err := GetUserByEmail(identifier)
	if err != nil {
		user, err = GetUserByPhoneNumber(identifier)
		if err != nil {
			return resp, errors.NewAppError(errors.ErrCodeUserNotFound, "Không tìm thấy người dùng", nil)
		}
	}

	if user.Status != constants.UserStatusActive {
		return resp, errors.NewAppError(errors.ErrCodeUnauthorized, "Tài khoản đã bị khóa", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return resp, errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu không đúng", nil)
	}

	token, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, 24*60)
	if err != nil {
		return resp, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo token", err)
	}

	resp.AccessToken = token
	resp.User = dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Status:      user.Status,
	}
	return resp, nil
}
