package aggregate

import "time"

// GeoLocation is a captured coordinate pair
type GeoLocation struct {
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  *float64  `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	Timestamp time.Time `json:"timestamp"`
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return a.Local().Format("2006-01-02") == b.Local().Format("2006-01-02")
}

// Clone returns a copy that shares no pointers with g
func (g GeoLocation) Clone() GeoLocation {
	cp := g
	if g.Accuracy != nil {
		acc := *g.Accuracy
		cp.Accuracy = &acc
	}
	return cp
}
