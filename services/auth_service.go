package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/danretegan/slim-mom-backend/models"
	"github.com/danretegan/slim-mom-backend/utils"
)

var ErrInvalidCredentials = errors.New("Invalid email or password")

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(name, email, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     "user",
	}
	return s.db.Create(&user).Error
}

// Authenticate verifies the credentials and issues a signed token carrying
// the user's id and role.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, user.Role)
}
