package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/where-app/api-go/engine"
	"github.com/where-app/api-go/models"
	"github.com/where-app/api-go/utils"
	"gorm.io/gorm"
)

type PointsController struct {
	DB     *gorm.DB
	Engine *engine.Engine
}

type LeaderboardQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=10" binding:"min=1,max=50"`
}

func NewPointsController(db *gorm.DB, eng *engine.Engine) *PointsController {
	return &PointsController{DB: db, Engine: eng}
}

// GetMyPoints godoc
// @Summary Get the caller's point total
// @Description Recomputes the total from the ledger and refreshes the cached figure
// @Tags points
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /points/me [get]
func (pc *PointsController) GetMyPoints(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	total, err := pc.Engine.Ledger.RefreshCachedTotal(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh points"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": total})
}

// GetMyActivities godoc
// @Summary Get the caller's point-earning activities
// @Tags points
// @Produce json
// @Success 200 {object} []models.PointActivity
// @Router /points/me/activities [get]
func (pc *PointsController) GetMyActivities(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	activities := pc.Engine.Ledger.UserActivities(user.UserID)
	if activities == nil {
		activities = []models.PointActivity{}
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// GetLeaderboard godoc
// @Summary Get top users by points
// @Tags points
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 10)"
// @Success 200 {object} map[string]interface{}
// @Router /leaderboard [get]
func (pc *PointsController) GetLeaderboard(c *gin.Context) {
	var query LeaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	type LeaderboardUser struct {
		ID       string  `json:"id" gorm:"column:id"`
		Username *string `json:"username" gorm:"column:username"`
		Points   float64 `json:"points" gorm:"column:points"`
		Rank     int     `json:"rank" gorm:"column:rank"`
	}

	baseQuery := pc.DB.Model(&models.User{}).
		Where("is_anonymous = ?", false).
		Select("users.id, users.username, users.total_points as points, RANK() OVER (ORDER BY users.total_points DESC) as rank")

	var count int64
	if err := baseQuery.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting users: " + err.Error()})
		return
	}

	offset := (query.Page - 1) * query.PageSize

	var leaderboardUsers []LeaderboardUser
	if err := baseQuery.Order("rank").Offset(offset).Limit(query.PageSize).Scan(&leaderboardUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching leaderboard: " + err.Error()})
		return
	}

	// caller's own rank, even when outside the current page
	var userRank LeaderboardUser
	if user := utils.GetUser(c); user != nil {
		userRankQuery := baseQuery.Session(&gorm.Session{})
		if err := userRankQuery.Where("users.id = ?", user.UserID).Limit(1).Scan(&userRank).Error; err != nil || userRank.ID == "" {
			userRank = LeaderboardUser{ID: user.UserID, Username: user.Username, Rank: 0}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": leaderboardUsers,
		"user_rank":   userRank,
		"pagination": gin.H{
			"current_page": query.Page,
			"page_size":    query.PageSize,
			"total_items":  count,
			"total_pages":  math.Ceil(float64(count) / float64(query.PageSize)),
		},
	})
}
