package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danretegan/slim-mom-backend/controllers"
	"github.com/danretegan/slim-mom-backend/middlewares"
	"github.com/danretegan/slim-mom-backend/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	productSvc := services.NewProductService(db)
	consumedSvc := services.NewConsumedService(db)
	userSvc := services.NewUserService(db)
	authSvc := services.NewAuthService(db)

	productCtl := controllers.NewProductController(productSvc)
	consumedCtl := controllers.NewConsumedController(consumedSvc)
	calorieCtl := controllers.NewCalorieInfoController(userSvc)
	authCtl := controllers.NewAuthController(authSvc)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	products := api.Group("/products")
	{
		// Public catalog routes
		products.GET("", productCtl.List)
		products.GET("/search", productCtl.Search)
		products.GET("/daily-intake", productCtl.DailyIntake)

		// Protected routes: guards compose in order before the handler
		products.POST("", middlewares.AuthMiddleware(), middlewares.RequireRole("admin"), productCtl.Create)
		products.POST("/daily-intake", middlewares.AuthMiddleware(), productCtl.SaveDailyIntake)
		products.POST("/consumed", middlewares.AuthMiddleware(), consumedCtl.Record)
		products.DELETE("/consumed/:id", middlewares.AuthMiddleware(), consumedCtl.Delete)
		products.GET("/day-info", middlewares.AuthMiddleware(), consumedCtl.DayInfo)
	}

	calorieInfo := api.Group("/calorie-info")
	calorieInfo.Use(middlewares.AuthMiddleware())
	{
		calorieInfo.POST("/save-calorie-info", calorieCtl.Save)
	}

	return r
}
