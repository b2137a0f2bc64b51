package store

import (
	"github.com/where-app/api-go/models"
	"gorm.io/gorm"
)

// PointsCache writes refreshed ledger totals into users.total_points.
// Recipients without a user row (the anonymous sentinel) are skipped by
// the zero-row update.
type PointsCache struct {
	DB *gorm.DB
}

func NewPointsCache(db *gorm.DB) *PointsCache {
	return &PointsCache{DB: db}
}

func (c *PointsCache) SetTotal(userID string, total float64) error {
	return c.DB.Model(&models.User{}).Where("id = ?", userID).Update("total_points", total).Error
}
