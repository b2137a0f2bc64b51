package models

import (
	"time"
)

type RefreshToken struct {
	ID             uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	CreatedAt      time.Time `json:"-"`
	UserID         string    `json:"userId" gorm:"type:uuid;not null;index"`
	Token          string    `json:"token" gorm:"not null"`
	ExpirationDate time.Time `json:"expiry" gorm:"not null"`
}
