package models

import (
	"time"
)

type Referral struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	ReferrerID string    `json:"referrerId" gorm:"type:uuid;not null;index"`
	ReferredID string    `json:"referredId" gorm:"type:uuid;not null;uniqueIndex"` // one claim per new account
	Code       string    `json:"code" gorm:"not null"`
	Claimed    bool      `json:"claimed" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt"`
}
