package models

import (
	"time"
)

// Activity types recorded in the points ledger.
const (
	ActivityCreateLocation    = "create_location"
	ActivityAddImage          = "add_image"
	ActivityVerifyLocation    = "verify_location"
	ActivityRateLocation      = "rate_location"
	ActivityComment           = "comment"
	ActivityReceiveEngagement = "receive_engagement"
	ActivityLikeImage         = "like_image"
	ActivityReferral          = "referral"
)

// SystemLocationID marks activities that are not tied to a location,
// such as referral rewards.
const SystemLocationID = "system"

// PointActivity is one entry of the append-only points ledger. Entries are
// immutable once written; the only removal path is revoking an image like,
// which filters the like_image entry out without touching anything else.
type PointActivity struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID       string    `json:"userId" gorm:"not null;index"`
	LocationID   string    `json:"locationId" gorm:"not null;index"`
	ActivityType string    `json:"activityType" gorm:"type:varchar(30);not null"`
	Points       float64   `json:"points" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"createdAt"`
	ImageURL     *string   `json:"imageUrl,omitempty" gorm:"index"` // like/unlike correlation
}
