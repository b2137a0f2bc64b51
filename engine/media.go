package engine

import (
	"github.com/where-app/api-go/models"
)

// displayImageLimit caps the Images slice used by list views; AllImages
// keeps the full set.
const displayImageLimit = 10

// AddComment appends the comment to the location and credits the author
// with a comment contribution.
func (a *Aggregator) AddComment(locationID string, comment models.Comment, by Identity) (*models.Location, error) {
	return a.Update(locationID, func(loc *models.Location) error {
		loc.Comments = append(loc.Comments, comment)
		a.ensureContributor(loc, by, models.ContributionComment)
		return nil
	})
}

// AddImage appends the image URL to the location and credits the uploader
// with an image contribution.
func (a *Aggregator) AddImage(locationID, imageURL string, by Identity) (*models.Location, error) {
	return a.Update(locationID, func(loc *models.Location) error {
		loc.AllImages = append(loc.AllImages, imageURL)
		loc.Images = displayImages(loc.AllImages)
		a.ensureContributor(loc, by, models.ContributionImage)
		return nil
	})
}

// RemoveImage drops the image URL from the location. Authorization (only
// the creator may remove images) is the caller's concern.
func (a *Aggregator) RemoveImage(locationID, imageURL string) (*models.Location, error) {
	return a.Update(locationID, func(loc *models.Location) error {
		kept := loc.AllImages[:0]
		for _, img := range loc.AllImages {
			if img != imageURL {
				kept = append(kept, img)
			}
		}
		loc.AllImages = kept
		loc.Images = displayImages(loc.AllImages)
		return nil
	})
}

func displayImages(all []string) []string {
	if len(all) > displayImageLimit {
		all = all[:displayImageLimit]
	}
	out := make([]string, len(all))
	copy(out, all)
	return out
}
