package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/where-app/api-go/controllers"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	// Image interactions
	locations := protected.Group("/locations")
	{
		locations.POST("/:id/images/like", interactionController.LikeImage)
		locations.POST("/:id/images/unlike", interactionController.UnlikeImage)
		locations.GET("/:id/images/likes", interactionController.GetImageLikes)
	}
}
