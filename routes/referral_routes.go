package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/where-app/api-go/controllers"
)

func SetupReferralRoutes(protected *gin.RouterGroup, referralController *controllers.ReferralController) {
	referrals := protected.Group("/referrals")
	{
		referrals.GET("/code", referralController.GetMyReferralCode)
		referrals.POST("/claim", referralController.ClaimReferral)
		referrals.GET("", referralController.GetMyReferrals)
	}
}
