package routes

import (
	"github.com/Atsuyko/restaurant/controllers"
	"github.com/Atsuyko/restaurant/middlewares"
	"github.com/Atsuyko/restaurant/repository"
	"github.com/Atsuyko/restaurant/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the engine used by main and by the HTTP tests.
func SetupRouter(db *gorm.DB) *gin.Engine {
	// extra fields in a request body are a decode failure, not noise
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	foodSvc := services.NewFoodService(foodRepo)
	restaurantSvc := services.NewRestaurantService(restaurantRepo)

	// Controllers
	securityCtrl := controllers.NewSecurityController(authSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	foodCtrl := controllers.NewFoodController(foodSvc)
	restaurantCtrl := controllers.NewRestaurantController(restaurantSvc)

	api := r.Group("/api")

	// Security (public)
	api.POST("/registration", securityCtrl.Register)
	api.POST("/login", securityCtrl.Login)

	// Account (principal resolved from the bearer API token; the
	// handlers answer 404 themselves when nothing resolved)
	account := api.Group("/account", middlewares.Identify(userRepo))
	{
		account.GET("/me", securityCtrl.Me)
		account.PUT("/edit", securityCtrl.EditAccount)
	}

	category := api.Group("/category")
	{
		category.POST("", categoryCtrl.Create)
		category.GET("/:id", categoryCtrl.Show)
		category.PUT("/:id", categoryCtrl.Edit)
		category.DELETE("/:id", categoryCtrl.Delete)
	}

	food := api.Group("/food")
	{
		food.POST("", foodCtrl.Create)
		food.GET("/:id", foodCtrl.Show)
		food.PUT("/:id", foodCtrl.Edit)
		food.DELETE("/:id", foodCtrl.Delete)
	}

	restaurant := api.Group("/restaurant")
	{
		restaurant.POST("", restaurantCtrl.Create)
		restaurant.GET("/:id", restaurantCtrl.Show)
		restaurant.PUT("/:id", restaurantCtrl.Edit)
		restaurant.DELETE("/:id", restaurantCtrl.Delete)
	}

	return r
}
