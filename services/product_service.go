package services

import (
	"gorm.io/gorm"

	"github.com/danretegan/slim-mom-backend/models"
	"github.com/danretegan/slim-mom-backend/utils"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

type CreateProductInput struct {
	Title                string
	Calories             float64
	Weight               float64
	Categories           []string
	GroupBloodNotAllowed bool
}

// List returns the whole catalog. No pagination, matching the documented
// contract.
func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Find(&products).Error
	return products, err
}

func (s *ProductService) Create(in CreateProductInput) (*models.Product, error) {
	product := models.Product{
		Title:                in.Title,
		Calories:             in.Calories,
		Weight:               in.Weight,
		Categories:           in.Categories,
		GroupBloodNotAllowed: in.GroupBloodNotAllowed,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Search matches the query as a case-insensitive substring of the title or
// any category. No ranking.
func (s *ProductService) Search(query string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + query + "%"
	err := s.db.
		Where("title ILIKE ? OR array_to_string(categories, ' ') ILIKE ?", pattern, pattern).
		Find(&products).Error
	return products, err
}

// DailyIntakeFor computes the daily kcal target and the list of products
// whose blood-group flag equals groupBloodNotAllowed. The public and private
// daily-intake endpoints share this one operation; only persistence differs.
func (s *ProductService) DailyIntakeFor(weight, height, age float64, groupBloodNotAllowed bool) (float64, []models.Product, error) {
	dailyKcal, err := utils.CalculateDailyCalories(weight, height, age)
	if err != nil {
		return 0, nil, err
	}

	var products []models.Product
	if err := s.db.Where("group_blood_not_allowed = ?", groupBloodNotAllowed).Find(&products).Error; err != nil {
		return 0, nil, err
	}

	return dailyKcal, products, nil
}

// RecordDailyIntake appends a DailyIntake row for the user, snapshotting
// product titles only. One row per submission; no dedup by day.
func (s *ProductService) RecordDailyIntake(userID uint, weight, height, age, dailyKcal float64, notRecommended []models.Product) (*models.DailyIntake, error) {
	titles := make([]string, 0, len(notRecommended))
	for _, p := range notRecommended {
		titles = append(titles, p.Title)
	}

	intake := models.DailyIntake{
		UserID:                 userID,
		Weight:                 weight,
		Height:                 height,
		Age:                    age,
		DailyKcal:              dailyKcal,
		NotRecommendedProducts: titles,
	}
	if err := s.db.Create(&intake).Error; err != nil {
		return nil, err
	}
	return &intake, nil
}
