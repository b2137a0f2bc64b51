package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/where-app/api-go/models"
	"github.com/where-app/api-go/types"
)

// Ledger is the append-only log of point-earning activities. It is the
// system of record for all points ever awarded; the per-user totals in the
// PointsCache are a convenience derived from it.
type Ledger struct {
	mu         sync.Mutex
	activities []models.PointActivity
	locations  LocationStore
	journal    Journal
	cache      PointsCache
	locks      *keyedMutex
	now        func() time.Time
	newID      func() string
}

func newLedger(locations LocationStore, journal Journal, cache PointsCache, locks *keyedMutex) *Ledger {
	return &Ledger{
		locations: locations,
		journal:   journal,
		cache:     cache,
		locks:     locks,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Restore seeds the ledger with previously persisted activities. Called
// once at startup, before the ledger is shared.
func (l *Ledger) Restore(activities []models.PointActivity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.activities = append(l.activities[:0], activities...)
}

// AddPoints appends one activity to the ledger. Every call appends
// unconditionally; deduplication exists only for image likes. Cached user
// totals are not touched here; callers refresh them explicitly via
// RefreshCachedTotal.
func (l *Ledger) AddPoints(userID, locationID, activityType string, points float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.append(userID, locationID, activityType, points, nil)
}

// DistributeEngagementPoints fans the budget of one engagement event out
// to the location's creator and contributors. The creator receives a fixed
// share; the remainder is split equally across the contributor records
// whose user is not the creator. A user with contributions of two kinds
// holds two records and receives two shares. If the location does not
// exist the call is a silent no-op; if nobody but the creator contributed,
// the remainder is not awarded to anyone.
//
// The newly appended activities are returned so callers can refresh the
// cached totals of every recipient.
func (l *Ledger) DistributeEngagementPoints(locationID string, totalPoints float64) ([]models.PointActivity, error) {
	unlock := l.locks.Lock(locationID)
	defer unlock()

	loc, err := l.locations.GetLocation(locationID)
	if errors.Is(err, ErrLocationNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	creatorShare := totalPoints * types.CreatorShare
	remainder := totalPoints * (1 - types.CreatorShare)

	l.mu.Lock()
	defer l.mu.Unlock()

	start := len(l.activities)

	if err := l.append(loc.CreatedBy, locationID, models.ActivityReceiveEngagement, creatorShare, nil); err != nil {
		return nil, err
	}

	var others []models.Contributor
	for _, c := range loc.Contributors {
		if c.UserID != loc.CreatedBy {
			others = append(others, c)
		}
	}

	if len(others) > 0 {
		perContributor := remainder / float64(len(others))
		for _, c := range others {
			if err := l.append(c.UserID, locationID, models.ActivityReceiveEngagement, perContributor, nil); err != nil {
				return nil, err
			}
		}
	}

	appended := make([]models.PointActivity, len(l.activities)-start)
	copy(appended, l.activities[start:])
	return appended, nil
}

// LikeImage records that the user liked the image and pays the engagement
// budget out to the location's creator and contributors. The liker earns
// nothing. Liking an already-liked image does nothing.
func (l *Ledger) LikeImage(userID, locationID, imageURL string) ([]models.PointActivity, error) {
	l.mu.Lock()
	if l.findLike(userID, imageURL) >= 0 {
		l.mu.Unlock()
		return nil, nil
	}
	err := l.append(userID, locationID, models.ActivityLikeImage, 0, &imageURL)
	l.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return l.DistributeEngagementPoints(locationID, types.EngagementPoints)
}

// UnlikeImage removes the user's like of the image from the ledger.
// Engagement points already distributed for the like stay paid out;
// distribution is one-directional.
func (l *Ledger) UnlikeImage(userID, locationID, imageURL string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.findLike(userID, imageURL)
	if i < 0 {
		return nil
	}

	removed := l.activities[i]
	l.activities = append(l.activities[:i], l.activities[i+1:]...)

	if l.journal != nil {
		return l.journal.RemoveActivity(removed.ID)
	}
	return nil
}

// IsImageLikedByUser reports whether the user currently likes the image.
func (l *Ledger) IsImageLikedByUser(userID, imageURL string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.findLike(userID, imageURL) >= 0
}

// ImageLikes counts the current likes of the image across all users.
func (l *Ledger) ImageLikes(imageURL string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, a := range l.activities {
		if a.ActivityType == models.ActivityLikeImage && a.ImageURL != nil && *a.ImageURL == imageURL {
			n++
		}
	}
	return n
}

// UserPoints sums every ledger entry attributed to the user.
func (l *Ledger) UserPoints(userID string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0.0
	for _, a := range l.activities {
		if a.UserID == userID {
			total += a.Points
		}
	}
	return total
}

// UserActivities returns the user's ledger entries, oldest first.
func (l *Ledger) UserActivities(userID string) []models.PointActivity {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.PointActivity
	for _, a := range l.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// Activities returns a snapshot of the whole ledger.
func (l *Ledger) Activities() []models.PointActivity {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.PointActivity, len(l.activities))
	copy(out, l.activities)
	return out
}

// RefreshCachedTotal recomputes the user's total from the ledger and
// pushes it into the points cache.
func (l *Ledger) RefreshCachedTotal(userID string) (float64, error) {
	total := l.UserPoints(userID)
	if l.cache != nil {
		if err := l.cache.SetTotal(userID, total); err != nil {
			return total, err
		}
	}
	return total, nil
}

// append adds one activity and mirrors it to the journal. Caller holds l.mu.
func (l *Ledger) append(userID, locationID, activityType string, points float64, imageURL *string) error {
	a := models.PointActivity{
		ID:           l.newID(),
		UserID:       userID,
		LocationID:   locationID,
		ActivityType: activityType,
		Points:       points,
		CreatedAt:    l.now(),
		ImageURL:     imageURL,
	}
	l.activities = append(l.activities, a)

	if l.journal != nil {
		return l.journal.RecordActivity(a)
	}
	return nil
}

// findLike returns the index of the user's like_image entry for the image,
// or -1. Caller holds l.mu.
func (l *Ledger) findLike(userID, imageURL string) int {
	for i, a := range l.activities {
		if a.UserID == userID && a.ActivityType == models.ActivityLikeImage &&
			a.ImageURL != nil && *a.ImageURL == imageURL {
			return i
		}
	}
	return -1
}
