package controllers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/where-app/api-go/engine"
	"github.com/where-app/api-go/models"
	"github.com/where-app/api-go/types"
	"github.com/where-app/api-go/utils"
	"gorm.io/gorm"
)

type LocationController struct {
	DB     *gorm.DB
	Engine *engine.Engine
}

func NewLocationController(db *gorm.DB, eng *engine.Engine) *LocationController {
	return &LocationController{DB: db, Engine: eng}
}

type CreateLocationInput struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Latitude    float64        `json:"latitude" binding:"required"`
	Longitude   float64        `json:"longitude" binding:"required"`
	Images      []string       `json:"images"`
	Ratings     *models.Rating `json:"ratings"`
}

type AddCommentInput struct {
	Text string `json:"text" binding:"required"`
}

type AddImageInput struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}

type LocationsQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=50" binding:"min=1,max=200"`
}

// CreateLocation godoc
// @Summary Drop a new pin
// @Description Creates a location; the creator earns the creation reward directly
// @Tags locations
// @Accept json
// @Produce json
// @Success 201 {object} models.Location
// @Router /locations [post]
func (lc *LocationController) CreateLocation(c *gin.Context) {
	var input CreateLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := utils.GetUser(c)
	by := identityOf(user)
	now := time.Now()

	location := models.Location{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		AllImages:   input.Images,
		CreatedBy:   by.UserID,
		CreatedAt:   now,
		Contributors: []models.Contributor{{
			UserID:       by.UserID,
			Username:     by.Username,
			IsAnonymous:  by.IsAnonymous,
			Contribution: models.ContributionImage,
			CreatedAt:    now,
		}},
	}
	location.Contributors[0].LocationID = location.ID
	if input.Ratings != nil {
		location.Ratings = *input.Ratings
	}
	if len(location.AllImages) > 10 {
		location.Images = location.AllImages[:10]
	} else {
		location.Images = location.AllImages
	}

	if err := lc.DB.Create(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location"})
		return
	}

	// only signed-in users (guests included) earn the creation reward
	if user != nil {
		if err := lc.Engine.Ledger.AddPoints(user.UserID, location.ID, models.ActivityCreateLocation, types.CreateLocationPoints); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record points"})
			return
		}
		refreshTotals(lc.Engine.Ledger, user.UserID)
	}

	c.JSON(http.StatusCreated, location)
}

// GetLocations godoc
// @Summary List locations
// @Tags locations
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 50)"
// @Success 200 {object} StandardResponse
// @Router /locations [get]
func (lc *LocationController) GetLocations(c *gin.Context) {
	var query LocationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var total int64
	lc.DB.Model(&models.Location{}).Count(&total)

	var locations []models.Location
	result := lc.DB.Preload("Contributors").Preload("Comments").
		Order("created_at desc").
		Offset((query.Page - 1) * query.PageSize).
		Limit(query.PageSize).
		Find(&locations)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching locations"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    locations,
		Pagination: &PaginationMeta{
			CurrentPage: query.Page,
			PageSize:    query.PageSize,
			TotalItems:  total,
			TotalPages:  int(math.Ceil(float64(total) / float64(query.PageSize))),
		},
	})
}

// GetLocation godoc
// @Summary Get a location by id
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.Location
// @Router /locations/{id} [get]
func (lc *LocationController) GetLocation(c *gin.Context) {
	var location models.Location
	err := lc.DB.Preload("Contributors").Preload("Comments").
		Where("id = ?", c.Param("id")).First(&location).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching location"})
		return
	}

	c.JSON(http.StatusOK, location)
}

// RateLocation godoc
// @Summary Submit a rating vector for a location
// @Description Folds the submitted vector into the location's running averages
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.Location
// @Router /locations/{id}/rate [post]
func (lc *LocationController) RateLocation(c *gin.Context) {
	locationID := c.Param("id")

	var vector models.Rating
	if err := c.ShouldBindJSON(&vector); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := utils.GetUser(c)
	by := identityOf(user)

	location, err := lc.Engine.Aggregator.SubmitRating(locationID, vector, by)
	if errors.Is(err, engine.ErrLocationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rate location"})
		return
	}

	lc.awardEngagement(user, locationID, models.ActivityRateLocation)

	c.JSON(http.StatusOK, location)
}

// VerifyLocation godoc
// @Summary Verify presence at a location
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.Location
// @Router /locations/{id}/verify [post]
func (lc *LocationController) VerifyLocation(c *gin.Context) {
	locationID := c.Param("id")

	user := utils.GetUser(c)
	by := identityOf(user)

	location, err := lc.Engine.Aggregator.Verify(locationID, by)
	if errors.Is(err, engine.ErrLocationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify location"})
		return
	}

	lc.awardEngagement(user, locationID, models.ActivityVerifyLocation)

	c.JSON(http.StatusOK, location)
}

// AddComment godoc
// @Summary Comment on a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 201 {object} models.Location
// @Router /locations/{id}/comments [post]
func (lc *LocationController) AddComment(c *gin.Context) {
	locationID := c.Param("id")

	var input AddCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := utils.GetUser(c)
	by := identityOf(user)

	comment := models.Comment{
		ID:          uuid.New().String(),
		LocationID:  locationID,
		UserID:      by.UserID,
		Username:    by.Username,
		IsAnonymous: by.IsAnonymous,
		Text:        input.Text,
		CreatedAt:   time.Now(),
	}

	location, err := lc.Engine.Aggregator.AddComment(locationID, comment, by)
	if errors.Is(err, engine.ErrLocationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	lc.awardEngagement(user, locationID, models.ActivityComment)

	c.JSON(http.StatusCreated, location)
}

// AddImage godoc
// @Summary Attach an uploaded image to a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.Location
// @Router /locations/{id}/images [post]
func (lc *LocationController) AddImage(c *gin.Context) {
	locationID := c.Param("id")

	var input AddImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := utils.GetUser(c)
	by := identityOf(user)

	location, err := lc.Engine.Aggregator.AddImage(locationID, input.ImageURL, by)
	if errors.Is(err, engine.ErrLocationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}

	lc.awardEngagement(user, locationID, models.ActivityAddImage)

	c.JSON(http.StatusOK, location)
}

// RemoveImage godoc
// @Summary Remove an image from a location
// @Description Only the location's creator may remove images
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.Location
// @Router /locations/{id}/images [delete]
func (lc *LocationController) RemoveImage(c *gin.Context) {
	locationID := c.Param("id")

	var input AddImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var location models.Location
	if err := lc.DB.Where("id = ?", locationID).First(&location).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}
	if location.CreatedBy != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the creator can remove images"})
		return
	}

	updated, err := lc.Engine.Aggregator.RemoveImage(locationID, input.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove image"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// awardEngagement records the actor's own reward and fans the engagement
// budget out to the location's creator and contributors, then refreshes
// the cached totals of everyone involved.
func (lc *LocationController) awardEngagement(user *utils.UserClaims, locationID, activityType string) {
	touched := make([]string, 0, 4)

	if user != nil {
		if err := lc.Engine.Ledger.AddPoints(user.UserID, locationID, activityType, types.EngagementPoints); err == nil {
			touched = append(touched, user.UserID)
		}
	}

	appended, err := lc.Engine.Ledger.DistributeEngagementPoints(locationID, types.EngagementPoints)
	if err == nil {
		for _, a := range appended {
			touched = append(touched, a.UserID)
		}
	}

	refreshTotals(lc.Engine.Ledger, touched...)
}
