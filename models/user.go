package models

import (
	"time"

	"github.com/lib/pq"
)

// CalorieInfo is the user's calorie profile. It is replaced wholesale by
// the save-calorie-info endpoint; no history is kept.
type CalorieInfo struct {
	Height              float64        `json:"height"`
	Age                 float64        `json:"age"`
	CurrentWeight       float64        `json:"currentWeight"`
	DesireWeight        float64        `json:"desireWeight"`
	BloodType           int            `json:"bloodType"`
	DailyRate           float64        `json:"dailyRate"`
	NotRecommendedFoods pq.StringArray `gorm:"type:text[]" json:"notRecommendedFoods"`
}

type User struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Email       string      `gorm:"uniqueIndex;not null" json:"email"`
	Password    string      `gorm:"not null" json:"-"`
	Name        string      `json:"name"`
	Role        string      `gorm:"size:16;default:user" json:"role"` // "user" | "admin"
	CalorieInfo CalorieInfo `gorm:"embedded;embeddedPrefix:calorie_" json:"calorieInfo"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
