package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/where-app/api-go/engine"
	"github.com/where-app/api-go/models"
	"github.com/where-app/api-go/utils"
	"gorm.io/gorm"
)

type UserController struct {
	DB     *gorm.DB
	Engine *engine.Engine
}

func NewUserController(db *gorm.DB, eng *engine.Engine) *UserController {
	return &UserController{DB: db, Engine: eng}
}

// GetUserProfile godoc
// @Summary Get a user's public profile with contribution stats
// @Tags users
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /users/{userId} [get]
func (uc *UserController) GetUserProfile(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	userID := c.Param("userId")

	var targetUser models.User
	if err := uc.DB.Where("id = ?", userID).First(&targetUser).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var stats struct {
		LocationsCreated int64 `json:"locationsCreated"`
		ImagesAdded      int64 `json:"imagesAdded"`
		CommentsWritten  int64 `json:"commentsWritten"`
		RatingsSubmitted int64 `json:"ratingsSubmitted"`
	}

	uc.DB.Model(&models.Location{}).Where("created_by = ?", userID).Count(&stats.LocationsCreated)
	uc.DB.Model(&models.Contributor{}).Where("user_id = ? AND contribution = ?", userID, models.ContributionImage).Count(&stats.ImagesAdded)
	uc.DB.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&stats.CommentsWritten)
	uc.DB.Model(&models.Contributor{}).Where("user_id = ? AND contribution = ?", userID, models.ContributionRating).Count(&stats.RatingsSubmitted)

	isOwnProfile := currentUser.UserID == targetUser.ID

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"id":           targetUser.ID,
			"username":     targetUser.Username,
			"profileImage": targetUser.ProfileImage,
			"isAnonymous":  targetUser.IsAnonymous,
			"totalPoints":  uc.Engine.Ledger.UserPoints(targetUser.ID),
			"createdAt":    targetUser.CreatedAt,
			"isOwnProfile": isOwnProfile,
			"stats":        stats,
		},
	})
}

// GetUserActivities godoc
// @Summary List a user's point activities
// @Tags users
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /users/{userId}/activities [get]
func (uc *UserController) GetUserActivities(c *gin.Context) {
	userID := c.Param("userId")

	var user models.User
	if err := uc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	activities := uc.Engine.Ledger.UserActivities(userID)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"activities":  activities,
			"totalPoints": uc.Engine.Ledger.UserPoints(userID),
		},
	})
}
