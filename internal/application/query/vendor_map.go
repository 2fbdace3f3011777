package query

import (
	"math"

	"fieldtrack/internal/domain/aggregate"
)

// Map reference points
const (
	DefaultCenterLatitude  = 28.6139
	DefaultCenterLongitude = 77.2090

	syntheticBaseLatitude  = 28.6
	syntheticBaseLongitude = 77.2
	syntheticStep          = 0.05
	syntheticSpread        = 0.5
)

var markerColors = map[aggregate.StakeholderType]string{
	aggregate.StakeholderFarmer:       "#10B981",
	aggregate.StakeholderSeller:       "#3B82F6",
	aggregate.StakeholderInfluencer:   "#8B5CF6",
	aggregate.StakeholderVeterinarian: "#F59E0B",
	aggregate.StakeholderOther:        "#6B7280",
}

var typeLabels = map[aggregate.StakeholderType]string{
	aggregate.StakeholderFarmer:       "Farmer",
	aggregate.StakeholderSeller:       "Seller/Retailer",
	aggregate.StakeholderInfluencer:   "Influencer",
	aggregate.StakeholderVeterinarian: "Veterinarian",
	aggregate.StakeholderOther:        "Other",
}

// MarkerColor returns the marker color of a stakeholder type
func MarkerColor(t aggregate.StakeholderType) string {
	if c, ok := markerColors[t]; ok {
		return c
	}
	return markerColors[aggregate.StakeholderOther]
}

// TypeLabel returns the display label of a stakeholder type
func TypeLabel(t aggregate.StakeholderType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return typeLabels[aggregate.StakeholderOther]
}

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapMarker places one vendor on the map. Synthetic markers carry placeholder
// coordinates and must never be treated as real geodata.
type MapMarker struct {
	Vendor    aggregate.Vendor `json:"vendor"`
	Position  Coordinates      `json:"position"`
	Synthetic bool             `json:"synthetic"`
	Color     string           `json:"color"`
	Label     string           `json:"label"`
}

// MapView is everything needed to draw the vendor map
type MapView struct {
	Markers         []MapMarker  `json:"markers"`
	Center          Coordinates  `json:"center"`
	CurrentLocation *Coordinates `json:"current_location,omitempty"`
	VendorCount     int          `json:"vendor_count"`
}

// Markers positions each vendor by its index in the displayed list
func Markers(vendors []aggregate.Vendor) []MapMarker {
	markers := make([]MapMarker, 0, len(vendors))
	for i, v := range vendors {
		pos, synthetic := markerPosition(v, i)
		markers = append(markers, MapMarker{
			Vendor:    v,
			Position:  pos,
			Synthetic: synthetic,
			Color:     MarkerColor(v.Type),
			Label:     TypeLabel(v.Type),
		})
	}
	return markers
}

// A location with a zero coordinate counts as missing.
func markerPosition(v aggregate.Vendor, index int) (Coordinates, bool) {
	if v.Location != nil && v.Location.Latitude != 0 && v.Location.Longitude != 0 {
		return Coordinates{Latitude: v.Location.Latitude, Longitude: v.Location.Longitude}, false
	}

	offset := math.Mod(float64(index)*syntheticStep, syntheticSpread)
	lng := syntheticBaseLongitude + offset
	if index%2 != 0 {
		lng = syntheticBaseLongitude - offset
	}
	return Coordinates{Latitude: syntheticBaseLatitude + offset, Longitude: lng}, true
}

// Center picks the map center: the current location, else the mean of the
// marker positions, else the default regional center.
func Center(markers []MapMarker, current *aggregate.GeoLocation) Coordinates {
	if current != nil {
		return Coordinates{Latitude: current.Latitude, Longitude: current.Longitude}
	}
	if len(markers) == 0 {
		return Coordinates{Latitude: DefaultCenterLatitude, Longitude: DefaultCenterLongitude}
	}

	var lat, lng float64
	for _, m := range markers {
		lat += m.Position.Latitude
		lng += m.Position.Longitude
	}
	n := float64(len(markers))
	return Coordinates{Latitude: lat / n, Longitude: lng / n}
}

// VendorMapQuery builds map views over the vendor collection
type VendorMapQuery struct {
	vendors *VendorQueryEngine
}

// NewVendorMapQuery creates a new vendor map query
func NewVendorMapQuery(vendors *VendorQueryEngine) *VendorMapQuery {
	return &VendorMapQuery{vendors: vendors}
}

// Build draws the given vendors, or every active vendor when vendors is nil
func (q *VendorMapQuery) Build(vendors []aggregate.Vendor, current *aggregate.GeoLocation) MapView {
	if vendors == nil {
		vendors = q.vendors.GetActive()
	}

	markers := Markers(vendors)
	view := MapView{
		Markers:     markers,
		Center:      Center(markers, current),
		VendorCount: len(vendors),
	}
	if current != nil {
		view.CurrentLocation = &Coordinates{Latitude: current.Latitude, Longitude: current.Longitude}
	}
	return view
}
