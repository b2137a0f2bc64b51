package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/where-app/api-go/controllers"
)

func SetupLocationRoutes(open *gin.RouterGroup, locationController *controllers.LocationController) {
	locations := open.Group("/locations")
	{
		locations.POST("", locationController.CreateLocation)
		locations.GET("", locationController.GetLocations)
		locations.GET("/:id", locationController.GetLocation)
		locations.POST("/:id/rate", locationController.RateLocation)
		locations.POST("/:id/verify", locationController.VerifyLocation)
		locations.POST("/:id/comments", locationController.AddComment)
		locations.POST("/:id/images", locationController.AddImage)
		locations.DELETE("/:id/images", locationController.RemoveImage)
	}
}
