package engine

import (
	"time"

	"github.com/where-app/api-go/models"
)

// in-memory fakes for the engine's collaborator interfaces

type memStore struct {
	locations map[string]*models.Location
	saved     int
}

func newMemStore(locs ...*models.Location) *memStore {
	s := &memStore{locations: make(map[string]*models.Location)}
	for _, l := range locs {
		s.locations[l.ID] = l
	}
	return s
}

func (s *memStore) GetLocation(id string) (*models.Location, error) {
	loc, ok := s.locations[id]
	if !ok {
		return nil, ErrLocationNotFound
	}
	return loc, nil
}

func (s *memStore) SaveLocation(loc *models.Location) error {
	s.locations[loc.ID] = loc
	s.saved++
	return nil
}

type memJournal struct {
	recorded []models.PointActivity
	removed  []string
}

func (j *memJournal) RecordActivity(a models.PointActivity) error {
	j.recorded = append(j.recorded, a)
	return nil
}

func (j *memJournal) RemoveActivity(id string) error {
	j.removed = append(j.removed, id)
	return nil
}

type memCache struct {
	totals map[string]float64
}

func newMemCache() *memCache {
	return &memCache{totals: make(map[string]float64)}
}

func (c *memCache) SetTotal(userID string, total float64) error {
	c.totals[userID] = total
	return nil
}

func testLocation(id, createdBy string, contributors ...models.Contributor) *models.Location {
	return &models.Location{
		ID:           id,
		Name:         "Test Spot",
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
		Contributors: contributors,
	}
}

func contributor(userID, kind string) models.Contributor {
	name := userID
	return models.Contributor{UserID: userID, Username: &name, Contribution: kind, CreatedAt: time.Now()}
}

func identity(userID string) Identity {
	return Identity{UserID: userID, Username: &userID}
}
