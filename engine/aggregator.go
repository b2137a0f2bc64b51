package engine

import (
	"time"

	"github.com/where-app/api-go/models"
)

// Aggregator owns mutations of the location aggregate: the running rating
// averages, the verification counter and the contributor list. Every
// operation is a read-modify-write against the LocationStore serialized
// per location id.
type Aggregator struct {
	locations LocationStore
	locks     *keyedMutex
	now       func() time.Time
}

func newAggregator(locations LocationStore, locks *keyedMutex) *Aggregator {
	return &Aggregator{
		locations: locations,
		locks:     locks,
		now:       time.Now,
	}
}

// SubmitRating folds a new rating vector into the location's running
// averages without storing the raw submission:
//
//	updated = (current*count + new) / (count + 1)
//
// Values are averaged as-is; out-of-range axis values are accepted. The
// submitting user is credited with a rating contribution exactly once no
// matter how often they rate.
func (a *Aggregator) SubmitRating(locationID string, vector models.Rating, by Identity) (*models.Location, error) {
	return a.Update(locationID, func(loc *models.Location) error {
		n := float64(loc.RatingCount)
		cur := loc.Ratings

		loc.Ratings = models.Rating{
			Security:      (cur.Security*n + vector.Security) / (n + 1),
			Violence:      (cur.Violence*n + vector.Violence) / (n + 1),
			Welcoming:     (cur.Welcoming*n + vector.Welcoming) / (n + 1),
			StreetFood:    (cur.StreetFood*n + vector.StreetFood) / (n + 1),
			Restaurants:   (cur.Restaurants*n + vector.Restaurants) / (n + 1),
			Pickpocketing: (cur.Pickpocketing*n + vector.Pickpocketing) / (n + 1),
			QualityOfLife: (cur.QualityOfLife*n + vector.QualityOfLife) / (n + 1),
			Hookers:       (cur.Hookers*n + vector.Hookers) / (n + 1),
		}
		loc.RatingCount++

		a.ensureContributor(loc, by, models.ContributionRating)
		return nil
	})
}

// Verify marks the location verified, bumps the verification counter and
// credits the verifier with a verification contribution.
func (a *Aggregator) Verify(locationID string, by Identity) (*models.Location, error) {
	return a.Update(locationID, func(loc *models.Location) error {
		loc.Verified = true
		loc.VerificationCount++
		a.ensureContributor(loc, by, models.ContributionVerification)
		return nil
	})
}

// Contribute credits the user with the given contribution kind. Duplicate
// contributions of the same kind are silently ignored.
func (a *Aggregator) Contribute(locationID string, by Identity, contribution string) (*models.Location, error) {
	return a.Update(locationID, func(loc *models.Location) error {
		a.ensureContributor(loc, by, contribution)
		return nil
	})
}

// Update runs fn against the location under its lock and saves the result.
// Collaborators use it for mutations the engine does not own itself, such
// as appending comments or images, so those still serialize with rating
// submissions and point fan-outs.
func (a *Aggregator) Update(locationID string, fn func(*models.Location) error) (*models.Location, error) {
	unlock := a.locks.Lock(locationID)
	defer unlock()

	loc, err := a.locations.GetLocation(locationID)
	if err != nil {
		return nil, err
	}

	if err := fn(loc); err != nil {
		return nil, err
	}

	if err := a.locations.SaveLocation(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (a *Aggregator) ensureContributor(loc *models.Location, by Identity, contribution string) {
	if loc.HasContributor(by.UserID, contribution) {
		return
	}
	loc.Contributors = append(loc.Contributors, models.Contributor{
		LocationID:   loc.ID,
		UserID:       by.UserID,
		Username:     by.Username,
		IsAnonymous:  by.IsAnonymous,
		Contribution: contribution,
		CreatedAt:    a.now(),
	})
}
