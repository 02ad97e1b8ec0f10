// README: Property dataset model and module errors.
package property

import "errors"

// ErrNotFound is returned when no property matches the requested name.
var ErrNotFound = errors.New("property not found")

// Property is one row of the managed portfolio.
type Property struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Owner         string  `json:"owner"`
	Area          string  `json:"area"`
	PricePerNight float64 `json:"pricePerNight"`
	Beds          int     `json:"beds"`
	MaxGuests     int     `json:"maxGuests"`
	WifiSpeed     int     `json:"wifiSpeedMbps"`
	WifiPassword  string  `json:"-"`
	Rating        float64 `json:"rating"`
	Style         string  `json:"style"`
	Type          string  `json:"type"`
	HasPool       bool    `json:"hasPool"`
	HasHotTub     bool    `json:"hasHotTub"`
	HasCameras    bool    `json:"hasCameras"`
	CheckIn       string  `json:"checkIn"`
	Parking       string  `json:"parking"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}

// OwnerCount is an aggregate row for owner statistics.
type OwnerCount struct {
	Owner string `json:"owner"`
	Count int    `json:"count"`
}

// Pair names two properties together with the distance between them.
type Pair struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	DistanceKm float64 `json:"distanceKm"`
}
