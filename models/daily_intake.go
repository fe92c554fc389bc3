package models

import (
	"time"

	"github.com/lib/pq"
)

// DailyIntake is an append-only log of a daily-rate calculation.
// NotRecommendedProducts holds product TITLES copied at computation time;
// later catalog edits do not change persisted rows.
type DailyIntake struct {
	ID                     uint           `gorm:"primaryKey" json:"id"`
	UserID                 uint           `gorm:"index;not null" json:"userId"`
	Weight                 float64        `json:"weight"`
	Height                 float64        `json:"height"`
	Age                    float64        `json:"age"`
	DailyKcal              float64        `json:"dailyKcal"`
	NotRecommendedProducts pq.StringArray `gorm:"type:text[]" json:"notRecommendedProducts"`
	CreatedAt              time.Time      `json:"createdAt"`
}
