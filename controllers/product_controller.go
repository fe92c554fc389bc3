package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/danretegan/slim-mom-backend/logger"
	"github.com/danretegan/slim-mom-backend/services"
	"github.com/danretegan/slim-mom-backend/utils"
)

type ProductController struct {
	Products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{Products: products}
}

// GET /api/products
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.Products.List()
	if err != nil {
		logger.Error("list products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// POST /api/products (admin only)
func (ctl *ProductController) Create(c *gin.Context) {
	var body struct {
		Categories           []string   `json:"categories"`
		Weight               looseFloat `json:"weight"`
		Title                string     `json:"title"`
		Calories             looseFloat `json:"calories"`
		GroupBloodNotAllowed looseBool  `json:"groupBloodNotAllowed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	product, err := ctl.Products.Create(services.CreateProductInput{
		Title:                body.Title,
		Calories:             float64(body.Calories),
		Weight:               float64(body.Weight),
		Categories:           body.Categories,
		GroupBloodNotAllowed: bool(body.GroupBloodNotAllowed),
	})
	if err != nil {
		// Store constraints are the only validation; their failure is a 400.
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GET /api/products/search?query=
func (ctl *ProductController) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query string is required"})
		return
	}

	products, err := ctl.Products.Search(query)
	if err != nil {
		logger.Error("product search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/daily-intake (public, no persistence)
func (ctl *ProductController) DailyIntake(c *gin.Context) {
	weight := parseQueryFloat(c.Query("weight"))
	height := parseQueryFloat(c.Query("height"))
	age := parseQueryFloat(c.Query("age"))
	notAllowed := c.Query("groupBloodNotAllowed") == "true"

	dailyKcal, products, err := ctl.Products.DailyIntakeFor(weight, height, age, notAllowed)
	if errors.Is(err, utils.ErrInvalidCalorieInput) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		logger.Error("daily intake query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dailyKcal":              dailyKcal,
		"notRecommendedProducts": products,
	})
}

// POST /api/products/daily-intake (authenticated; persists a snapshot)
func (ctl *ProductController) SaveDailyIntake(c *gin.Context) {
	var body struct {
		Weight               looseFloat `json:"weight"`
		Height               looseFloat `json:"height"`
		Age                  looseFloat `json:"age"`
		GroupBloodNotAllowed looseBool  `json:"groupBloodNotAllowed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	dailyKcal, products, err := ctl.Products.DailyIntakeFor(
		float64(body.Weight), float64(body.Height), float64(body.Age), bool(body.GroupBloodNotAllowed))
	if errors.Is(err, utils.ErrInvalidCalorieInput) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		logger.Error("daily intake query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	intake, err := ctl.Products.RecordDailyIntake(
		userID, float64(body.Weight), float64(body.Height), float64(body.Age), dailyKcal, products)
	if err != nil {
		logger.Error("persist daily intake failed", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// The persisted snapshot is titles only, and that is also the response.
	c.JSON(http.StatusOK, gin.H{
		"dailyKcal":              dailyKcal,
		"notRecommendedProducts": intake.NotRecommendedProducts,
	})
}
