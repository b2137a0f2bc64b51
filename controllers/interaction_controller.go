package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/where-app/api-go/engine"
	"github.com/where-app/api-go/utils"
	"gorm.io/gorm"
)

type InteractionController struct {
	DB     *gorm.DB
	Engine *engine.Engine
}

func NewInteractionController(db *gorm.DB, eng *engine.Engine) *InteractionController {
	return &InteractionController{DB: db, Engine: eng}
}

type LikeImageInput struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}

// LikeImage godoc
// @Summary Like an image of a location
// @Description The liker earns nothing; the engagement budget goes to the location's creator and contributors. Liking twice is a no-op.
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} map[string]interface{}
// @Router /locations/{id}/images/like [post]
func (ic *InteractionController) LikeImage(c *gin.Context) {
	locationID := c.Param("id")

	var input LikeImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	appended, err := ic.Engine.Ledger.LikeImage(user.UserID, locationID, input.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like image"})
		return
	}

	touched := make([]string, 0, len(appended))
	for _, a := range appended {
		touched = append(touched, a.UserID)
	}
	refreshTotals(ic.Engine.Ledger, touched...)

	c.JSON(http.StatusOK, gin.H{
		"liked": true,
		"likes": ic.Engine.Ledger.ImageLikes(input.ImageURL),
	})
}

// UnlikeImage godoc
// @Summary Revoke a like of an image
// @Description Removes the like; engagement points already distributed stay paid out
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} map[string]interface{}
// @Router /locations/{id}/images/unlike [post]
func (ic *InteractionController) UnlikeImage(c *gin.Context) {
	locationID := c.Param("id")

	var input LikeImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := ic.Engine.Ledger.UnlikeImage(user.UserID, locationID, input.ImageURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked": false,
		"likes": ic.Engine.Ledger.ImageLikes(input.ImageURL),
	})
}

// GetImageLikes godoc
// @Summary Get like count for an image
// @Tags interactions
// @Produce json
// @Param imageUrl query string true "Image URL"
// @Success 200 {object} map[string]interface{}
// @Router /images/likes [get]
func (ic *InteractionController) GetImageLikes(c *gin.Context) {
	imageURL := c.Query("imageUrl")
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl is required"})
		return
	}

	likedByMe := false
	if user := utils.GetUser(c); user != nil {
		likedByMe = ic.Engine.Ledger.IsImageLikedByUser(user.UserID, imageURL)
	}

	c.JSON(http.StatusOK, gin.H{
		"likes":     ic.Engine.Ledger.ImageLikes(imageURL),
		"likedByMe": likedByMe,
	})
}
