package models

import "time"

// ConsumedProduct logs one product eaten on one day. UserID and ProductID
// are weak references; the product is only verified to exist at creation
// time. Rows are created and hard-deleted by their owner, never updated.
type ConsumedProduct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Quantity  float64   `gorm:"not null" json:"quantity"` // grams consumed
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
