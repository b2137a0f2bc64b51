package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/where-app/api-go/controllers"
	"github.com/where-app/api-go/engine"
	"github.com/where-app/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, eng *engine.Engine) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	locationController := controllers.NewLocationController(db, eng)
	interactionController := controllers.NewInteractionController(db, eng)
	pointsController := controllers.NewPointsController(db, eng)
	referralController := controllers.NewReferralController(db, eng)
	userController := controllers.NewUserController(db, eng)
	uploadController := controllers.NewUploadController(db)
	validationController := controllers.NewValidationController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/guest", authController.Guest)
		public.POST("/auth/google", authController.GoogleSignIn)
	}

	// Routes that work for both signed-in and anonymous callers
	open := r.Group("/api")
	open.Use(middleware.OptionalAuthMiddleware())
	{
		SetupLocationRoutes(open, locationController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		// User routes
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		// Setup other routes within the protected group
		SetupInteractionRoutes(protected, interactionController)
		SetupPointsRoutes(protected, pointsController)
		SetupReferralRoutes(protected, referralController)
		SetupUserRoutes(protected, userController)
		SetupUploadRoutes(protected, uploadController)
		SetupValidationRoutes(protected, validationController)
	}
}
