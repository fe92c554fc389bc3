package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/danretegan/slim-mom-backend/models"
)

var ErrUserNotFound = errors.New("User not found")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// SaveCalorieInfo replaces the user's calorie profile wholesale. The
// identity may have been deleted since the token was issued, hence the
// lookup.
func (s *UserService) SaveCalorieInfo(userID uint, info models.CalorieInfo) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	user.CalorieInfo = info
	return s.db.Save(&user).Error
}
