package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/where-app/api-go/models"
)

func TestSubmitRatingRunningAverage(t *testing.T) {
	store := newMemStore(testLocation("loc-1", "alice"))
	eng := New(store, nil, nil)

	submissions := []models.Rating{
		{Security: 8, Violence: 2, Welcoming: 9, StreetFood: 7, Restaurants: 6, Pickpocketing: 1, QualityOfLife: 8, Hookers: 0},
		{Security: 4, Violence: 6, Welcoming: 5, StreetFood: 3, Restaurants: 8, Pickpocketing: 5, QualityOfLife: 6, Hookers: 2},
		{Security: 9, Violence: 1, Welcoming: 7, StreetFood: 10, Restaurants: 4, Pickpocketing: 0, QualityOfLife: 9, Hookers: 1},
	}

	var loc *models.Location
	var err error
	for i, r := range submissions {
		loc, err = eng.Aggregator.SubmitRating("loc-1", r, identity("bob"))
		require.NoError(t, err)
		assert.Equal(t, i+1, loc.RatingCount)
	}

	// every axis must equal the arithmetic mean of the submitted values
	mean := func(vals ...float64) float64 {
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		return sum / float64(len(vals))
	}

	assert.InDelta(t, mean(8, 4, 9), loc.Ratings.Security, 1e-9)
	assert.InDelta(t, mean(2, 6, 1), loc.Ratings.Violence, 1e-9)
	assert.InDelta(t, mean(9, 5, 7), loc.Ratings.Welcoming, 1e-9)
	assert.InDelta(t, mean(7, 3, 10), loc.Ratings.StreetFood, 1e-9)
	assert.InDelta(t, mean(6, 8, 4), loc.Ratings.Restaurants, 1e-9)
	assert.InDelta(t, mean(1, 5, 0), loc.Ratings.Pickpocketing, 1e-9)
	assert.InDelta(t, mean(8, 6, 9), loc.Ratings.QualityOfLife, 1e-9)
	assert.InDelta(t, mean(0, 2, 1), loc.Ratings.Hookers, 1e-9)
}

func TestSubmitRatingAcceptsOutOfRangeValues(t *testing.T) {
	store := newMemStore(testLocation("loc-1", "alice"))
	eng := New(store, nil, nil)

	loc, err := eng.Aggregator.SubmitRating("loc-1", models.Rating{Security: 42}, identity("bob"))
	require.NoError(t, err)

	// no clamping, plain average
	assert.InDelta(t, 42.0, loc.Ratings.Security, 1e-9)
}

func TestSubmitRatingContributorIdempotent(t *testing.T) {
	store := newMemStore(testLocation("loc-1", "alice"))
	eng := New(store, nil, nil)

	_, err := eng.Aggregator.SubmitRating("loc-1", models.Rating{Security: 5}, identity("bob"))
	require.NoError(t, err)
	loc, err := eng.Aggregator.SubmitRating("loc-1", models.Rating{Security: 7}, identity("bob"))
	require.NoError(t, err)

	ratingRecords := 0
	for _, c := range loc.Contributors {
		if c.UserID == "bob" && c.Contribution == models.ContributionRating {
			ratingRecords++
		}
	}
	assert.Equal(t, 1, ratingRecords)
	assert.Equal(t, 2, loc.RatingCount)
}

func TestSubmitRatingLocationNotFound(t *testing.T) {
	eng := New(newMemStore(), nil, nil)

	_, err := eng.Aggregator.SubmitRating("missing", models.Rating{}, identity("bob"))
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestContributeSeparateKinds(t *testing.T) {
	store := newMemStore(testLocation("loc-1", "alice"))
	eng := New(store, nil, nil)

	_, err := eng.Aggregator.Contribute("loc-1", identity("bob"), models.ContributionImage)
	require.NoError(t, err)
	_, err = eng.Aggregator.Contribute("loc-1", identity("bob"), models.ContributionImage)
	require.NoError(t, err)
	loc, err := eng.Aggregator.Contribute("loc-1", identity("bob"), models.ContributionComment)
	require.NoError(t, err)

	// one record per kind: bob appears twice, once for image, once for comment
	assert.Len(t, loc.Contributors, 2)
}

func TestVerify(t *testing.T) {
	store := newMemStore(testLocation("loc-1", "alice"))
	eng := New(store, nil, nil)

	loc, err := eng.Aggregator.Verify("loc-1", identity("carol"))
	require.NoError(t, err)
	assert.True(t, loc.Verified)
	assert.Equal(t, 1, loc.VerificationCount)

	loc, err = eng.Aggregator.Verify("loc-1", identity("carol"))
	require.NoError(t, err)
	assert.Equal(t, 2, loc.VerificationCount)

	// verification contributor recorded once
	records := 0
	for _, c := range loc.Contributors {
		if c.UserID == "carol" && c.Contribution == models.ContributionVerification {
			records++
		}
	}
	assert.Equal(t, 1, records)
}

func TestAnonymousIdentity(t *testing.T) {
	store := newMemStore(testLocation("loc-1", "alice"))
	eng := New(store, nil, nil)

	loc, err := eng.Aggregator.SubmitRating("loc-1", models.Rating{}, Anonymous())
	require.NoError(t, err)

	require.Len(t, loc.Contributors, 1)
	assert.Equal(t, AnonymousID, loc.Contributors[0].UserID)
	assert.True(t, loc.Contributors[0].IsAnonymous)
	assert.Nil(t, loc.Contributors[0].Username)
}
