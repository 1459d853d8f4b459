// File: /routes/routes.go
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"autohub-api/config"
	"autohub-api/controllers"
	"autohub-api/middleware"
	"autohub-api/repositories"
	"autohub-api/services"
)

func SetupCORS(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Location", "X-Total-Count", "X-Page", "X-Total-Pages"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Repositories
	vehicleRepo := repositories.NewVehicleRepository(db)
	userRepo := repositories.NewUserRepository(db)
	branchRepo := repositories.NewBranchRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	testDriveRepo := repositories.NewTestDriveRepository(db)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Controllers
	authController := controllers.NewAuthController(userRepo, tokenService)
	userController := controllers.NewUserController(userRepo)
	branchController := controllers.NewBranchController(branchRepo)
	vehicleController := controllers.NewVehicleController(vehicleRepo)
	favoriteController := controllers.NewFavoriteController(favoriteRepo)
	inquiryController := controllers.NewInquiryController(inquiryRepo, vehicleRepo, emailService)
	testDriveController := controllers.NewTestDriveController(testDriveRepo, vehicleRepo, userRepo, emailService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited against credential stuffing)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(20, 5))
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	// Public catalogue routes
	vehicles := v1.Group("/vehicles")
	{
		vehicles.GET("", vehicleController.GetVehicles)
		vehicles.GET("/search", vehicleController.SearchVehicles)
		vehicles.GET("/:id", vehicleController.GetVehicle)
	}

	branches := v1.Group("/branches")
	{
		branches.GET("", branchController.GetBranches)
		branches.GET("/:id", branchController.GetBranch)
	}

	// Guest inquiries are allowed, so creation is public.
	v1.POST("/inquiries", inquiryController.CreateInquiry)

	// Routes for signed-in customers
	user := v1.Group("/")
	user.Use(middleware.AuthMiddleware(tokenService))
	{
		favorites := user.Group("/favorites")
		{
			favorites.GET("/user/:userId", favoriteController.GetUserFavorites)
			favorites.POST("", favoriteController.AddFavorite)
			favorites.DELETE("", favoriteController.RemoveFavorite)
		}

		testDrives := user.Group("/testdrives")
		{
			testDrives.POST("", testDriveController.CreateTestDrive)
			testDrives.GET("/user/:userId", testDriveController.GetTestDrivesByUser)
		}
	}

	// Administrative routes
	admin := v1.Group("/")
	admin.Use(middleware.AuthMiddleware(tokenService), middleware.RequireAdmin())
	{
		adminVehicles := admin.Group("/vehicles")
		{
			adminVehicles.POST("", vehicleController.CreateVehicle)
			adminVehicles.PUT("/:id", vehicleController.UpdateVehicle)
			adminVehicles.DELETE("/:id", vehicleController.DeleteVehicle)
		}

		adminBranches := admin.Group("/branches")
		{
			adminBranches.POST("", branchController.CreateBranch)
			adminBranches.PUT("/:id", branchController.UpdateBranch)
			adminBranches.DELETE("/:id", branchController.DeleteBranch)
		}

		adminUsers := admin.Group("/users")
		{
			adminUsers.GET("", userController.GetUsers)
			adminUsers.GET("/:id", userController.GetUser)
			adminUsers.PUT("/:id", userController.UpdateUser)
			adminUsers.DELETE("/:id", userController.DeleteUser)
		}

		admin.GET("/favorites", favoriteController.GetAllFavorites)

		adminInquiries := admin.Group("/inquiries")
		{
			adminInquiries.GET("", inquiryController.GetInquiries)
			adminInquiries.GET("/:id", inquiryController.GetInquiry)
			adminInquiries.GET("/vehicle/:vehicleId", inquiryController.GetInquiriesByVehicle)
			adminInquiries.PATCH("/:id/status", inquiryController.UpdateInquiryStatus)
			adminInquiries.DELETE("/:id", inquiryController.DeleteInquiry)
		}

		adminTestDrives := admin.Group("/testdrives")
		{
			adminTestDrives.GET("", testDriveController.GetTestDrives)
			adminTestDrives.GET("/:id", testDriveController.GetTestDrive)
			adminTestDrives.PATCH("/:id/status", testDriveController.UpdateTestDriveStatus)
			adminTestDrives.DELETE("/:id", testDriveController.DeleteTestDrive)
		}
	}
}
