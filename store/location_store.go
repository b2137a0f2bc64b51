// Package store provides the Postgres-backed implementations of the
// engine's collaborator interfaces.
package store

import (
	"errors"

	"github.com/where-app/api-go/engine"
	"github.com/where-app/api-go/models"
	"gorm.io/gorm"
)

type LocationStore struct {
	DB *gorm.DB
}

func NewLocationStore(db *gorm.DB) *LocationStore {
	return &LocationStore{DB: db}
}

func (s *LocationStore) GetLocation(id string) (*models.Location, error) {
	var loc models.Location
	err := s.DB.Preload("Contributors").Preload("Comments").Where("id = ?", id).First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, engine.ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (s *LocationStore) SaveLocation(loc *models.Location) error {
	return s.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(loc).Error
}
