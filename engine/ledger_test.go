package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/where-app/api-go/models"
	"github.com/where-app/api-go/types"
)

func TestAddPointsAppends(t *testing.T) {
	journal := &memJournal{}
	eng := New(newMemStore(), journal, nil)

	require.NoError(t, eng.Ledger.AddPoints("alice", "loc-1", models.ActivityCreateLocation, 1.0))
	require.NoError(t, eng.Ledger.AddPoints("alice", "loc-1", models.ActivityCreateLocation, 1.0))

	// no dedup: every call appends
	acts := eng.Ledger.UserActivities("alice")
	require.Len(t, acts, 2)
	assert.NotEqual(t, acts[0].ID, acts[1].ID)
	assert.Equal(t, 2.0, eng.Ledger.UserPoints("alice"))

	// every append is mirrored to the journal
	assert.Len(t, journal.recorded, 2)
}

func TestDistributeEngagementPointsConservation(t *testing.T) {
	loc := testLocation("loc-1", "alice",
		contributor("alice", models.ContributionImage),
		contributor("bob", models.ContributionComment),
		contributor("carol", models.ContributionRating),
	)
	eng := New(newMemStore(loc), nil, nil)

	appended, err := eng.Ledger.DistributeEngagementPoints("loc-1", 0.1)
	require.NoError(t, err)

	// alice's own contributor record is excluded, bob and carol split 0.07
	require.Len(t, appended, 3)
	assert.Equal(t, "alice", appended[0].UserID)
	assert.InDelta(t, 0.03, appended[0].Points, 1e-12)
	assert.Equal(t, "bob", appended[1].UserID)
	assert.InDelta(t, 0.035, appended[1].Points, 1e-12)
	assert.Equal(t, "carol", appended[2].UserID)
	assert.InDelta(t, 0.035, appended[2].Points, 1e-12)

	sum := 0.0
	for _, a := range appended {
		assert.Equal(t, models.ActivityReceiveEngagement, a.ActivityType)
		sum += a.Points
	}
	assert.InDelta(t, 0.1, sum, 1e-12)
}

func TestDistributePerRecordNotPerUser(t *testing.T) {
	// bob contributed twice under different kinds and receives two shares
	loc := testLocation("loc-1", "alice",
		contributor("bob", models.ContributionImage),
		contributor("bob", models.ContributionComment),
	)
	eng := New(newMemStore(loc), nil, nil)

	appended, err := eng.Ledger.DistributeEngagementPoints("loc-1", 1.0)
	require.NoError(t, err)
	require.Len(t, appended, 3)

	assert.InDelta(t, 0.7, eng.Ledger.UserPoints("bob"), 1e-12)
}

func TestDistributeNoOtherContributors(t *testing.T) {
	// the creator's own record is the only one: 0.3P to the creator, the
	// remaining 0.7P is not awarded to anyone
	loc := testLocation("loc-1", "alice", contributor("alice", models.ContributionImage))
	eng := New(newMemStore(loc), nil, nil)

	appended, err := eng.Ledger.DistributeEngagementPoints("loc-1", 0.1)
	require.NoError(t, err)

	require.Len(t, appended, 1)
	assert.Equal(t, "alice", appended[0].UserID)
	assert.InDelta(t, 0.03, appended[0].Points, 1e-12)
	assert.Len(t, eng.Ledger.Activities(), 1)
}

func TestDistributeMissingLocationIsNoOp(t *testing.T) {
	eng := New(newMemStore(), nil, nil)

	appended, err := eng.Ledger.DistributeEngagementPoints("missing", 0.1)
	require.NoError(t, err)
	assert.Empty(t, appended)
	assert.Empty(t, eng.Ledger.Activities())
}

func TestLikeImageDedupAndDistribution(t *testing.T) {
	loc := testLocation("loc-1", "alice", contributor("bob", models.ContributionComment))
	eng := New(newMemStore(loc), nil, nil)

	appended, err := eng.Ledger.LikeImage("dave", "loc-1", "img-1.jpg")
	require.NoError(t, err)
	require.Len(t, appended, 2) // creator + bob

	// second like of the same image is a no-op
	appended, err = eng.Ledger.LikeImage("dave", "loc-1", "img-1.jpg")
	require.NoError(t, err)
	assert.Empty(t, appended)

	assert.True(t, eng.Ledger.IsImageLikedByUser("dave", "img-1.jpg"))
	assert.Equal(t, 1, eng.Ledger.ImageLikes("img-1.jpg"))

	// the liker earns nothing
	assert.Equal(t, 0.0, eng.Ledger.UserPoints("dave"))
	assert.InDelta(t, 0.1*types.CreatorShare, eng.Ledger.UserPoints("alice"), 1e-12)
}

func TestUnlikeImageKeepsDistributedPoints(t *testing.T) {
	loc := testLocation("loc-1", "alice", contributor("bob", models.ContributionComment))
	journal := &memJournal{}
	eng := New(newMemStore(loc), journal, nil)

	_, err := eng.Ledger.LikeImage("dave", "loc-1", "img-1.jpg")
	require.NoError(t, err)

	alicePoints := eng.Ledger.UserPoints("alice")
	bobPoints := eng.Ledger.UserPoints("bob")

	require.NoError(t, eng.Ledger.UnlikeImage("dave", "loc-1", "img-1.jpg"))

	assert.False(t, eng.Ledger.IsImageLikedByUser("dave", "img-1.jpg"))
	assert.Equal(t, 0, eng.Ledger.ImageLikes("img-1.jpg"))

	// distribution is one-directional: unlike does not claw points back
	assert.Equal(t, alicePoints, eng.Ledger.UserPoints("alice"))
	assert.Equal(t, bobPoints, eng.Ledger.UserPoints("bob"))

	// only the like_image entry was removed from the journal
	require.Len(t, journal.removed, 1)
	assert.Len(t, eng.Ledger.Activities(), 2)
}

func TestUnlikeWithoutLikeIsNoOp(t *testing.T) {
	journal := &memJournal{}
	eng := New(newMemStore(), journal, nil)

	require.NoError(t, eng.Ledger.UnlikeImage("dave", "loc-1", "img-1.jpg"))
	assert.Empty(t, journal.removed)
}

func TestRefreshCachedTotalMatchesLedger(t *testing.T) {
	loc := testLocation("loc-1", "alice", contributor("bob", models.ContributionComment))
	cache := newMemCache()
	eng := New(newMemStore(loc), nil, cache)

	require.NoError(t, eng.Ledger.AddPoints("bob", "loc-1", models.ActivityComment, 0.1))
	_, err := eng.Ledger.DistributeEngagementPoints("loc-1", 0.1)
	require.NoError(t, err)
	_, err = eng.Ledger.LikeImage("bob", "loc-1", "img-1.jpg")
	require.NoError(t, err)

	for _, userID := range []string{"alice", "bob", "dave"} {
		total, err := eng.Ledger.RefreshCachedTotal(userID)
		require.NoError(t, err)

		// cached figure always equals the ledger sum
		assert.Equal(t, eng.Ledger.UserPoints(userID), total)
		assert.Equal(t, total, cache.totals[userID])
	}
}

func TestRestore(t *testing.T) {
	eng := New(newMemStore(), nil, nil)
	eng.Ledger.Restore([]models.PointActivity{
		{ID: "a-1", UserID: "alice", LocationID: models.SystemLocationID, ActivityType: models.ActivityReferral, Points: 5},
	})

	assert.Equal(t, 5.0, eng.Ledger.UserPoints("alice"))
	assert.Len(t, eng.Ledger.Activities(), 1)
}
