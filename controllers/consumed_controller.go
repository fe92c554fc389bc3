package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/danretegan/slim-mom-backend/logger"
	"github.com/danretegan/slim-mom-backend/services"
)

type ConsumedController struct {
	Consumed *services.ConsumedService
}

func NewConsumedController(consumed *services.ConsumedService) *ConsumedController {
	return &ConsumedController{Consumed: consumed}
}

// POST /api/products/consumed
func (ctl *ConsumedController) Record(c *gin.Context) {
	var body struct {
		ProductID uint       `json:"productId"`
		Date      string     `json:"date"`
		Quantity  looseFloat `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	consumed, err := ctl.Consumed.Record(c.GetUint("userID"), body.ProductID, date, float64(body.Quantity))
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		logger.Error("record consumption failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, consumed)
}

// DELETE /api/products/consumed/:id
func (ctl *ConsumedController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id can never match a row; same outcome as a miss.
		c.JSON(http.StatusNotFound, gin.H{"message": services.ErrConsumedNotFound.Error()})
		return
	}

	err = ctl.Consumed.Delete(c.GetUint("userID"), uint(id))
	if errors.Is(err, services.ErrConsumedNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		logger.Error("delete consumption failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Consumed product deleted successfully"})
}

// GET /api/products/day-info?date=YYYY-MM-DD
func (ctl *ConsumedController) DayInfo(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date is required"})
		return
	}

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	info, err := ctl.Consumed.DayInfo(c.GetUint("userID"), day)
	if err != nil {
		logger.Error("day info failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}
