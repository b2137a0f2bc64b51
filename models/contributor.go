package models

import (
	"time"
)

// Contribution kinds. A user appears at most once per kind on a location.
const (
	ContributionImage        = "image"
	ContributionVerification = "verification"
	ContributionRating       = "rating"
	ContributionComment      = "comment"
)

type Contributor struct {
	ID          uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	LocationID  string    `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_contributor_once,priority:1"`
	UserID      string    `json:"userId" gorm:"not null;uniqueIndex:idx_contributor_once,priority:2"`
	Username    *string   `json:"username"`
	IsAnonymous bool      `json:"isAnonymous" gorm:"default:false"`
	Contribution string   `json:"contribution" gorm:"type:varchar(20);not null;uniqueIndex:idx_contributor_once,priority:3"`
	CreatedAt   time.Time `json:"createdAt"`
}
