package types

// Point budgets per activity. Creating a location pays the creator
// directly; every other engagement action pays a fixed budget that is
// fanned out to the location's creator and contributors.
const (
	CreateLocationPoints = 1.0
	EngagementPoints     = 0.1
	ReferralPoints       = 5.0

	// CreatorShare is the fraction of an engagement budget that goes to
	// the location's creator; the rest is split equally across the other
	// contributor records.
	CreatorShare = 0.3
)

type PointsConfig struct {
	CreateLocationPoints float64
	EngagementPoints     float64
	ReferralPoints       float64
	CreatorShare         float64
}

func GetPointsConfig() PointsConfig {
	return PointsConfig{
		CreateLocationPoints: CreateLocationPoints,
		EngagementPoints:     EngagementPoints,
		ReferralPoints:       ReferralPoints,
		CreatorShare:         CreatorShare,
	}
}
