package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/danretegan/slim-mom-backend/models"
)

// Sentinel errors carry the exact wire messages; controllers map them to
// status codes.
var (
	ErrProductNotFound  = errors.New("Product not found")
	ErrConsumedNotFound = errors.New("Consumed product not found")
)

type ConsumedService struct {
	db *gorm.DB
}

func NewConsumedService(db *gorm.DB) *ConsumedService {
	return &ConsumedService{db: db}
}

// Record creates a consumption row after verifying the product exists.
// Referential integrity is only checked here, at creation time.
func (s *ConsumedService) Record(userID, productID uint, date time.Time, quantity float64) (*models.ConsumedProduct, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	consumed := models.ConsumedProduct{
		UserID:    userID,
		ProductID: productID,
		Date:      date,
		Quantity:  quantity,
	}
	if err := s.db.Create(&consumed).Error; err != nil {
		return nil, err
	}
	return &consumed, nil
}

// Delete hard-deletes the row. Ownership lives inside the delete predicate,
// so another user's id never matches, regardless of whether it exists.
func (s *ConsumedService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.ConsumedProduct{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConsumedNotFound
	}
	return nil
}

type DayInfo struct {
	Date             time.Time                `json:"date"`
	TotalCalories    float64                  `json:"totalCalories"`
	ConsumedProducts []models.ConsumedProduct `json:"consumedProducts"`
}

// DayInfo aggregates the user's consumption inside the inclusive day window
// [00:00:00.000, 23:59:59.999] around the given day, resolving each row to
// its product. A product with weight <= 0 contributes zero calories but the
// row is still listed.
func (s *ConsumedService) DayInfo(userID uint, day time.Time) (*DayInfo, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Millisecond)

	var consumed []models.ConsumedProduct
	err := s.db.
		Preload("Product").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&consumed).Error
	if err != nil {
		return nil, err
	}

	var total float64
	for _, row := range consumed {
		if row.Product == nil || row.Product.Weight <= 0 {
			continue
		}
		total += row.Product.Calories / row.Product.Weight * row.Quantity
	}

	return &DayInfo{
		Date:             start,
		TotalCalories:    total,
		ConsumedProducts: consumed,
	}, nil
}
