package engine

import (
	"errors"

	"github.com/where-app/api-go/models"
)

// ErrLocationNotFound is returned by LocationStore implementations when the
// requested id does not exist. Operations that mutate a specific location
// pass it through to their caller; DistributeEngagementPoints swallows it
// and becomes a no-op instead.
var ErrLocationNotFound = errors.New("location not found")

// AnonymousID is the fallback user id used when a request carries no
// authenticated session.
const AnonymousID = "anonymous"

// Identity is the acting user as seen by the engine. The HTTP layer builds
// it from the auth middleware; tests build it directly.
type Identity struct {
	UserID      string
	Username    *string
	IsAnonymous bool
}

// Anonymous returns the identity used for unauthenticated actions.
func Anonymous() Identity {
	return Identity{UserID: AnonymousID, IsAnonymous: true}
}

// LocationStore provides the location aggregates the engine operates on.
// The engine never owns persistence; it reads a location, transforms it and
// hands it back to the store.
type LocationStore interface {
	GetLocation(id string) (*models.Location, error)
	SaveLocation(loc *models.Location) error
}

// Journal receives ledger mutations so a caller can persist them. A nil
// journal is valid; the in-memory ledger then is the only copy.
type Journal interface {
	RecordActivity(a models.PointActivity) error
	RemoveActivity(id string) error
}

// PointsCache holds the denormalized per-user point totals. The ledger is
// the source of truth; RefreshCachedTotal pushes sums into this cache.
type PointsCache interface {
	SetTotal(userID string, total float64) error
}
