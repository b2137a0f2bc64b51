package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/where-app/api-go/controllers"
)

func SetupPointsRoutes(protected *gin.RouterGroup, pointsController *controllers.PointsController) {
	points := protected.Group("/points")
	{
		points.GET("/me", pointsController.GetMyPoints)
		points.GET("/me/activities", pointsController.GetMyActivities)
		points.GET("/leaderboard", pointsController.GetLeaderboard)
	}
}
