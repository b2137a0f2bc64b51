package store

import (
	"github.com/where-app/api-go/models"
	"gorm.io/gorm"
)

// ActivityJournal mirrors the in-memory points ledger into Postgres so the
// ledger survives restarts. The ledger stays the source of truth at
// runtime; rows here are written once and only removed when an image like
// is revoked.
type ActivityJournal struct {
	DB *gorm.DB
}

func NewActivityJournal(db *gorm.DB) *ActivityJournal {
	return &ActivityJournal{DB: db}
}

func (j *ActivityJournal) RecordActivity(a models.PointActivity) error {
	return j.DB.Create(&a).Error
}

func (j *ActivityJournal) RemoveActivity(id string) error {
	return j.DB.Where("id = ?", id).Delete(&models.PointActivity{}).Error
}

// Load returns all persisted activities oldest first, for seeding the
// ledger at startup.
func (j *ActivityJournal) Load() ([]models.PointActivity, error) {
	var activities []models.PointActivity
	if err := j.DB.Order("created_at asc").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
