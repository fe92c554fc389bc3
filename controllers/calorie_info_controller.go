package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/danretegan/slim-mom-backend/logger"
	"github.com/danretegan/slim-mom-backend/models"
	"github.com/danretegan/slim-mom-backend/services"
)

type CalorieInfoController struct {
	Users *services.UserService
}

func NewCalorieInfoController(users *services.UserService) *CalorieInfoController {
	return &CalorieInfoController{Users: users}
}

// POST /api/calorie-info/save-calorie-info
//
// Replaces the caller's calorie profile wholesale. Returns a confirmation
// message rather than the updated record; clients re-fetch if they need it.
func (ctl *CalorieInfoController) Save(c *gin.Context) {
	var body struct {
		Height              looseFloat `json:"height"`
		Age                 looseFloat `json:"age"`
		CurrentWeight       looseFloat `json:"currentWeight"`
		DesireWeight        looseFloat `json:"desireWeight"`
		BloodType           int        `json:"bloodType"`
		DailyRate           looseFloat `json:"dailyRate"`
		NotRecommendedFoods []string   `json:"notRecommendedFoods"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	err := ctl.Users.SaveCalorieInfo(c.GetUint("userID"), models.CalorieInfo{
		Height:              float64(body.Height),
		Age:                 float64(body.Age),
		CurrentWeight:       float64(body.CurrentWeight),
		DesireWeight:        float64(body.DesireWeight),
		BloodType:           body.BloodType,
		DailyRate:           float64(body.DailyRate),
		NotRecommendedFoods: body.NotRecommendedFoods,
	})
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		logger.Error("save calorie info failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Calorie info saved successfully"})
}
