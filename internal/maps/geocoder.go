// README: Google Maps geocoder used as the area-query fallback.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Geocoder resolves free-text area names to coordinates.
type Geocoder struct {
	client *maps.Client
}

// NewGeocoder creates a Geocoder with the given API key.
func NewGeocoder(apiKey string) (*Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Geocoder{client: client}, nil
}

// GeocodeArea returns the coordinates of the first geocoding result for the
// area phrase (e.g. "Casa Grande, Arizona").
func (g *Geocoder) GeocodeArea(ctx context.Context, area string) (lat, lng float64, err error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: area})
	if err != nil {
		return 0, 0, fmt.Errorf("geocode %q: %w", area, err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("geocode %q: no results", area)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
