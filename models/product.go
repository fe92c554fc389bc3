package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is a catalog entry. Calories and Weight describe the catalog
// portion; per-gram calories are derived as Calories/Weight.
type Product struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	Title                string         `gorm:"not null" json:"title"`
	Calories             float64        `gorm:"not null" json:"calories"`
	Weight               float64        `json:"weight"` // grams
	Categories           pq.StringArray `gorm:"type:text[]" json:"categories"`
	GroupBloodNotAllowed bool           `gorm:"index" json:"groupBloodNotAllowed"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}
