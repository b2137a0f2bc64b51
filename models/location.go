package models

import (
	"time"

	"github.com/lib/pq"
)

type Location struct {
	ID                string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name              string         `json:"name" gorm:"not null"`
	Description       string         `json:"description" gorm:"type:text"`
	Latitude          float64        `json:"latitude" gorm:"not null;type:decimal(10,8)"`
	Longitude         float64        `json:"longitude" gorm:"not null;type:decimal(11,8)"`
	Images            pq.StringArray `json:"images" gorm:"type:text[]"` // first 10 of AllImages, kept for list views
	AllImages         pq.StringArray `json:"allImages" gorm:"type:text[]"`
	Ratings           Rating         `json:"ratings" gorm:"embedded;embeddedPrefix:rating_"`
	RatingCount       int            `json:"ratingCount" gorm:"not null;default:0"`
	Comments          []Comment      `json:"comments" gorm:"foreignKey:LocationID"`
	CreatedBy         string         `json:"createdBy" gorm:"not null"`
	CreatedAt         time.Time      `json:"createdAt"`
	Verified          bool           `json:"verified" gorm:"default:false"`
	VerificationCount int            `json:"verificationCount" gorm:"not null;default:0"`
	Contributors      []Contributor  `json:"contributors" gorm:"foreignKey:LocationID"`
}

// HasContributor reports whether the user is already credited with the
// given contribution kind on this location.
func (l *Location) HasContributor(userID, contribution string) bool {
	for _, c := range l.Contributors {
		if c.UserID == userID && c.Contribution == contribution {
			return true
		}
	}
	return false
}
