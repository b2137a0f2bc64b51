package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/where-app/api-go/models"
)

func TestAddCommentCreditsContributorOnce(t *testing.T) {
	store := newMemStore(testLocation("loc-1", "alice"))
	eng := New(store, nil, nil)

	for i := 0; i < 2; i++ {
		_, err := eng.Aggregator.AddComment("loc-1", models.Comment{
			ID:         fmt.Sprintf("c-%d", i),
			LocationID: "loc-1",
			UserID:     "bob",
			Text:       "nice spot",
			CreatedAt:  time.Now(),
		}, identity("bob"))
		require.NoError(t, err)
	}

	loc, err := store.GetLocation("loc-1")
	require.NoError(t, err)
	assert.Len(t, loc.Comments, 2)
	assert.Len(t, loc.Contributors, 1)
	assert.Equal(t, models.ContributionComment, loc.Contributors[0].Contribution)
}

func TestAddImageDisplayLimit(t *testing.T) {
	store := newMemStore(testLocation("loc-1", "alice"))
	eng := New(store, nil, nil)

	var loc *models.Location
	var err error
	for i := 0; i < 12; i++ {
		loc, err = eng.Aggregator.AddImage("loc-1", fmt.Sprintf("img-%d.jpg", i), identity("bob"))
		require.NoError(t, err)
	}

	assert.Len(t, loc.AllImages, 12)
	assert.Len(t, loc.Images, 10)
	assert.Equal(t, "img-0.jpg", loc.Images[0])
}

func TestRemoveImage(t *testing.T) {
	loc := testLocation("loc-1", "alice")
	loc.AllImages = []string{"a.jpg", "b.jpg", "c.jpg"}
	loc.Images = []string{"a.jpg", "b.jpg", "c.jpg"}
	eng := New(newMemStore(loc), nil, nil)

	updated, err := eng.Aggregator.RemoveImage("loc-1", "b.jpg")
	require.NoError(t, err)

	assert.Equal(t, []string{"a.jpg", "c.jpg"}, []string(updated.AllImages))
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, []string(updated.Images))
}
