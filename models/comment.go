package models

import (
	"time"
)

type Comment struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	LocationID  string    `json:"locationId" gorm:"type:uuid;not null;index"`
	UserID      string    `json:"userId" gorm:"not null"`
	Username    *string   `json:"username"`
	IsAnonymous bool      `json:"isAnonymous" gorm:"default:false"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt"`
}
