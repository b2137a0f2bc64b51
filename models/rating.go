package models

// Rating is the fixed-axis score vector a user submits for a location.
// Axis values live in the 0-10 range by convention. Some axes read
// "higher is worse" (violence, pickpocketing, hookers); the aggregation
// treats every axis the same and any inversion happens client-side.
type Rating struct {
	Security      float64 `json:"security" gorm:"not null;default:0"`
	Violence      float64 `json:"violence" gorm:"not null;default:0"`
	Welcoming     float64 `json:"welcoming" gorm:"not null;default:0"`
	StreetFood    float64 `json:"streetFood" gorm:"not null;default:0"`
	Restaurants   float64 `json:"restaurants" gorm:"not null;default:0"`
	Pickpocketing float64 `json:"pickpocketing" gorm:"not null;default:0"`
	QualityOfLife float64 `json:"qualityOfLife" gorm:"not null;default:0"`
	Hookers       float64 `json:"hookers" gorm:"not null;default:0"`
}
