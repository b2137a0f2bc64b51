package models

import (
	"time"

	"gorm.io/gorm"
)

// Auth providers supported by the app.
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
	ProviderGuest  = "guest"
)

type User struct {
	ID           string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Username     *string        `gorm:"uniqueIndex" json:"username"` // nil for guests
	Email        *string        `gorm:"uniqueIndex" json:"email,omitempty"`
	Password     *string        `json:"-"` // bcrypt hash, nil for guest/google accounts
	IsAnonymous  bool           `gorm:"default:false" json:"isAnonymous"`
	AuthProvider string         `gorm:"type:varchar(20);not null;default:'guest'" json:"authProvider"`
	ProfileImage *string        `json:"profileImage"`
	ReferralCode *string        `gorm:"uniqueIndex" json:"referralCode,omitempty"`
	// TotalPoints is a denormalized cache of the points ledger; the ledger
	// stays authoritative and this column is refreshed from it.
	TotalPoints   float64        `gorm:"not null;default:0" json:"points"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
