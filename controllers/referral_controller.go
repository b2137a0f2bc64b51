package controllers

import (
	"errors"
	"math/rand"
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

type ReferralController struct {
	DB     *gorm.DB
	Engine *engine.Engine
}

func NewReferralController(db *gorm.DB, eng *engine.Engine) *ReferralController {
	return &ReferralController{DB: db, Engine: eng}
}

type ClaimReferralInput struct {
	Code string `json:"code" binding:"required"`
}

const referralCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateReferralCode() string {
	code := make([]byte, 8)
	for i := range code {
		code[i] = referralCodeChars[rand.Intn(len(referralCodeChars))]
	}
	return "WHERE-" + string(code)
}

// GetMyReferralCode godoc
// @Summary Get the caller's referral code, creating one on first request
// @Tags referrals
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /referrals/code [get]
func (rc *ReferralController) GetMyReferralCode(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var account models.User
	if err := rc.DB.Where("id = ?", user.UserID).First(&account).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if account.ReferralCode == nil {
		code := generateReferralCode()
		if err := rc.DB.Model(&account).Update("referral_code", code).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create referral code"})
			return
		}
		account.ReferralCode = &code
	}

	c.JSON(http.StatusOK, gin.H{"code": *account.ReferralCode})
}

// ClaimReferral godoc
// @Summary Claim a referral code for the caller's new account
// @Description Awards the referrer the referral reward; a user can be referred once
// @Tags referrals
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /referrals/claim [post]
func (rc *ReferralController) ClaimReferral(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input ClaimReferralInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var referrer models.User
	err := rc.DB.Where("referral_code = ?", input.Code).First(&referrer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid referral code"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up referral code"})
		return
	}

	if referrer.ID == user.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot claim your own referral code"})
		return
	}

	var existing models.Referral
	if err := rc.DB.Where("referred_id = ?", user.UserID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Referral already claimed"})
		return
	}

	referral := models.Referral{
		ID:         uuid.New().String(),
		ReferrerID: referrer.ID,
		ReferredID: user.UserID,
		Code:       input.Code,
		Claimed:    true,
		CreatedAt:  time.Now(),
	}
	if err := rc.DB.Create(&referral).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record referral"})
		return
	}

	// referral rewards are not tied to a location
	if err := rc.Engine.Ledger.AddPoints(referrer.ID, models.SystemLocationID, models.ActivityReferral, types.ReferralPoints); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award referral points"})
		return
	}
	refreshTotals(rc.Engine.Ledger, referrer.ID)

	c.JSON(http.StatusOK, gin.H{"claimed": true})
}

// GetMyReferrals godoc
// @Summary List referrals made with the caller's code
// @Tags referrals
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /referrals [get]
func (rc *ReferralController) GetMyReferrals(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var referrals []models.Referral
	if err := rc.DB.Where("referrer_id = ?", user.UserID).Order("created_at desc").Find(&referrals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching referrals"})
		return
	}

	var claimed int64
	rc.DB.Model(&models.Referral{}).Where("referrer_id = ? AND claimed = ?", user.UserID, true).Count(&claimed)

	c.JSON(http.StatusOK, gin.H{
		"referrals": referrals,
		"count":     claimed,
	})
}
